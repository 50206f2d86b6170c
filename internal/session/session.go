// Package session drives one agent conversation over a bidirectional stream:
// it sends the run request, answers the agent's request for execution context
// with a workspace snapshot, and tears the stream down exactly once.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultGrace         = 5 * time.Second
	DefaultModel         = "default"
	DefaultClientVersion = "sdk-0.0.0"

	// zeroTraceparent is the placeholder trace context the backend expects.
	zeroTraceparent = "00-00000000000000000000000000000000-0000000000000000-00"
)

var errSendClosed = errors.New("session is closing")

// Stream is the client end of one Run call.
type Stream interface {
	Send(*agentpb.AgentClientMessage) error
	// Recv returns the next raw frame, or io.EOF when the server finished cleanly.
	Recv() ([]byte, error)
	CloseSend() error
	// Close aborts the call and must unblock a pending Recv.
	Close()
}

// Opener opens the Run stream with per-call metadata attached.
type Opener interface {
	Open(ctx context.Context, md metadata.MD) (Stream, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, md metadata.MD) (Stream, error)

func (f OpenerFunc) Open(ctx context.Context, md metadata.MD) (Stream, error) {
	return f(ctx, md)
}

// ContextBuilder produces the workspace description sent for an exec event.
type ContextBuilder interface {
	RequestContext(ctx context.Context) (*agentpb.RequestContext, error)
}

// Options configures a Session. Token, Opener and Context are required.
type Options struct {
	Token         string
	UserText      string
	Model         string
	ClientVersion string

	Opener  Opener
	Context ContextBuilder

	Timeout time.Duration // ceiling for the whole session
	Grace   time.Duration // teardown flush window

	// OnUpdate receives interaction updates (streamed text, token counts).
	// It runs on the receiving goroutine and must not block for long.
	OnUpdate func(*agentpb.InteractionUpdate)
}

// Session is a single-use conversation. Run may be called once.
type Session struct {
	opts           Options
	conversationID string
	requestID      string

	state   atomic.Int32
	started atomic.Bool

	// mu guards stream and closing; sendMu serializes every write to stream,
	// CloseSend included.
	mu      sync.Mutex
	stream  Stream
	closing bool
	sendMu  sync.Mutex

	cancel     context.CancelFunc
	readerDone chan struct{}
	result     chan Outcome

	finishOnce   sync.Once
	outcome      Outcome
	teardownOnce sync.Once
}

// New builds a session with fresh conversation and request ids.
func New(opts Options) *Session {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.ClientVersion == "" {
		opts.ClientVersion = DefaultClientVersion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Grace <= 0 {
		opts.Grace = DefaultGrace
	}
	return &Session{
		opts:           opts,
		conversationID: uuid.NewString(),
		requestID:      uuid.NewString(),
		readerDone:     make(chan struct{}),
		result:         make(chan Outcome, 1),
	}
}

// ConversationID is generated once per session and sent in the run request.
func (s *Session) ConversationID() string {
	return s.conversationID
}

// State reports the current protocol state.
func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) setState(st State) {
	for {
		cur := State(s.state.Load())
		if cur >= Closing {
			return
		}
		if s.state.CompareAndSwap(int32(cur), int32(st)) {
			if cur != st {
				logger.Debug("session state", "from", cur, "to", st)
			}
			return
		}
	}
}

// Metadata is attached to the call before any frame is sent.
func (s *Session) Metadata() metadata.MD {
	return metadata.Pairs(
		"authorization", "Bearer "+s.opts.Token,
		"x-request-id", s.requestID,
		"x-cursor-client-version", s.opts.ClientVersion,
		"traceparent", zeroTraceparent,
		"backend-traceparent", zeroTraceparent,
	)
}

// Run drives the session to a terminal outcome. The first terminal signal
// decides the outcome; teardown then runs before Run returns, waiting at most
// the grace period for the receiving goroutine.
func (s *Session) Run(ctx context.Context) Outcome {
	if !s.started.CompareAndSwap(false, true) {
		return Outcome{Status: Failed, Err: errors.New("session already run")}
	}
	if s.opts.Token == "" || s.opts.Opener == nil || s.opts.Context == nil {
		close(s.readerDone)
		return s.finish(Outcome{Status: Failed, Err: fmt.Errorf("%w: session needs a token, an opener and a context builder", agenterr.ErrConfig)})
	}
	s.setState(Authenticated)

	timer := time.NewTimer(s.opts.Timeout)
	defer timer.Stop()

	streamCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.converse(streamCtx)

	var out Outcome
	select {
	case out = <-s.result:
	case <-timer.C:
		out = Outcome{Status: TimedOut, Err: fmt.Errorf("%w: no terminal signal within %s", agenterr.ErrTimeout, s.opts.Timeout)}
	case <-ctx.Done():
		out = Outcome{Status: Failed, Err: fmt.Errorf("session cancelled: %w", ctx.Err())}
	}
	// Closing is set before teardown starts: from here on send refuses new
	// frames, so a late exec reply cannot follow the outcome.
	s.setState(Closing)
	s.teardown()
	return s.finish(out)
}

func (s *Session) finish(o Outcome) Outcome {
	s.finishOnce.Do(func() {
		s.outcome = o
		s.state.Store(int32(Done))
		logger.Info("session done", "outcome", o.Status, "err", o.Err)
	})
	return s.outcome
}

// report hands an outcome to Run; only the first one counts.
func (s *Session) report(o Outcome) {
	select {
	case s.result <- o:
	default:
	}
}

// converse is the receiving flow: open, send the run request, then handle
// inbound frames one at a time until the stream ends.
func (s *Session) converse(ctx context.Context) {
	defer close(s.readerDone)

	stream, err := s.opts.Opener.Open(ctx, s.Metadata())
	if err != nil {
		s.report(Outcome{Status: Failed, Err: transportErr("open stream", err)})
		return
	}
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		stream.Close()
		return
	}
	s.stream = stream
	s.mu.Unlock()
	s.setState(Streaming)

	run := agentpb.NewRunRequest(s.conversationID, s.opts.UserText, s.opts.Model)
	if err := s.send(run); err != nil {
		s.report(Outcome{Status: Failed, Err: err})
		return
	}
	logger.Info("run request sent", "conversation", s.conversationID, "model", s.opts.Model)
	s.setState(AwaitingEvent)

	for {
		frame, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			s.report(Outcome{Status: Completed})
			return
		}
		if err != nil {
			s.report(Outcome{Status: Failed, Err: transportErr("receive", err)})
			return
		}
		msg, err := agentpb.UnmarshalServerMessage(frame)
		if err != nil {
			// a frame we cannot decode means the peer broke the contract
			s.report(Outcome{Status: Failed, Err: err})
			return
		}
		if err := s.dispatch(ctx, msg); err != nil {
			s.report(Outcome{Status: Failed, Err: err})
			return
		}
	}
}

func (s *Session) dispatch(ctx context.Context, msg *agentpb.AgentServerMessage) error {
	switch p := msg.GetMessage().(type) {
	case *agentpb.AgentServerMessage_ExecServerMessage:
		return s.respond(ctx, p.ExecServerMessage)
	case *agentpb.AgentServerMessage_InteractionUpdate:
		logger.Debug("interaction update", "kind", p.InteractionUpdate.Kind())
		if s.opts.OnUpdate != nil {
			s.opts.OnUpdate(p.InteractionUpdate)
		}
	default:
		logger.Info("ignoring server message", "kind", msg.Kind(), "fields", msg.UnknownFieldNumbers())
	}
	return nil
}

// respond answers an exec event with the request context and then closes the
// exec stream. Both frames go out under one write lock so nothing can land
// between them.
func (s *Session) respond(ctx context.Context, exec *agentpb.ExecServerMessage) error {
	s.setState(Responding)
	logger.Info("exec request received", "id", exec.GetId(), "exec_id", exec.GetExecId())

	rc, err := s.opts.Context.RequestContext(ctx)
	if err != nil {
		return fmt.Errorf("build request context: %w", err)
	}
	reply := agentpb.NewExecReply(exec.GetId(), exec.GetExecId(), rc)
	if err := s.send(reply, agentpb.NewStreamClose(exec.GetId())); err != nil {
		return err
	}
	logger.Info("request context sent", "id", exec.GetId(), "workspace", rc.GetWorkspacePath())
	s.setState(AwaitingEvent)
	return nil
}

func (s *Session) send(msgs ...*agentpb.AgentClientMessage) error {
	s.mu.Lock()
	stream := s.stream
	s.mu.Unlock()
	if stream == nil {
		return transportErr("send", errors.New("stream not open"))
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.State() >= Closing {
		return transportErr("send", errSendClosed)
	}
	for _, m := range msgs {
		if err := stream.Send(m); err != nil {
			return transportErr("send "+m.Kind(), err)
		}
		logger.Debug("frame sent", "kind", m.Kind())
	}
	return nil
}

// teardown half-closes the stream, gives in-flight frames the grace period to
// drain, then forces the call closed. Only the first call has any effect.
// Callers move the session to Closing first so no new frame starts.
func (s *Session) teardown() {
	s.teardownOnce.Do(func() {
		s.mu.Lock()
		s.closing = true
		stream := s.stream
		s.mu.Unlock()

		if stream != nil {
			// CloseSend waits behind a send already in flight, which may be
			// stuck on flow control, so it must not hold up the grace timer.
			go func() {
				s.sendMu.Lock()
				defer s.sendMu.Unlock()
				if err := stream.CloseSend(); err != nil {
					logger.Debug("close send", "err", err)
				}
			}()

			grace := time.NewTimer(s.opts.Grace)
			select {
			case <-s.readerDone:
			case <-grace.C:
				logger.Warn("teardown grace elapsed, forcing stream closed", "grace", s.opts.Grace)
			}
			grace.Stop()
		}

		if s.cancel != nil {
			s.cancel()
		}
		if stream != nil {
			stream.Close()
		}
	})
}

func transportErr(op string, err error) error {
	if errors.Is(err, agenterr.ErrTransport) || errors.Is(err, agenterr.ErrProtocolDecode) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", agenterr.ErrTransport, op, err)
}
