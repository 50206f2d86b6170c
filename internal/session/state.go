package session

import "fmt"

// State is a protocol state of a Session.
type State int32

const (
	Idle State = iota
	Authenticated
	Streaming
	AwaitingEvent
	Responding
	Closing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Authenticated:
		return "authenticated"
	case Streaming:
		return "streaming"
	case AwaitingEvent:
		return "awaiting_event"
	case Responding:
		return "responding"
	case Closing:
		return "closing"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Status is the terminal result of a session.
type Status int

const (
	Completed Status = iota + 1
	Failed
	TimedOut
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Outcome is produced exactly once per session. Err is nil only for Completed.
type Outcome struct {
	Status Status
	Err    error
}

func (o Outcome) String() string {
	if o.Err == nil {
		return o.Status.String()
	}
	return fmt.Sprintf("%s: %v", o.Status, o.Err)
}
