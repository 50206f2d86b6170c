//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package workspace

import "runtime"

func OSVersion() string {
	return runtime.GOOS
}
