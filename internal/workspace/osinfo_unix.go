//go:build linux || darwin || freebsd || netbsd || openbsd

package workspace

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// OSVersion reports "<goos> <kernel release>", e.g. "linux 6.10.14-linuxkit".
func OSVersion() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return runtime.GOOS
	}
	return runtime.GOOS + " " + unix.ByteSliceToString(u.Release[:])
}
