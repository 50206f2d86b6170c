package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// DefaultUserAgent is what the backend expects from SDK clients. gRPC drops a
// user-agent set through metadata, so it is applied as a dial option.
const DefaultUserAgent = "connect-es/1.7.0"

// Options configures the agent channel.
type Options struct {
	Target    string // host:port, or a grpc target such as passthrough:///bufnet
	Insecure  bool   // plaintext, for local peers
	UserAgent string

	// Dialer replaces the network dialer, e.g. with an in-memory listener.
	Dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// Client wraps the gRPC connection to the agent service.
type Client struct {
	conn      *grpc.ClientConn
	agent     agentpb.AgentServiceClient
	opened    atomic.Int32
	closeOnce sync.Once
	closeErr  error
}

// Dial prepares a connection. grpc.NewClient is lazy: nothing touches the
// network until the first stream is opened.
func Dial(opts Options) (*Client, error) {
	if opts.Target == "" {
		return nil, fmt.Errorf("%w: agent target is empty", agenterr.ErrConfig)
	}

	creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	if opts.Insecure {
		creds = insecure.NewCredentials()
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithUserAgent(ua),
	}
	if opts.Dialer != nil {
		dialOpts = append(dialOpts, grpc.WithContextDialer(opts.Dialer))
	}

	conn, err := grpc.NewClient(opts.Target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: dial agent: %v", agenterr.ErrTransport, err)
	}
	return &Client{conn: conn, agent: agentpb.NewAgentServiceClient(conn)}, nil
}

// Open starts one AgentService/Run stream carrying md as per-call metadata.
// The call is forced onto agentpb.Codec so server frames can be read raw.
func (c *Client) Open(ctx context.Context, md metadata.MD) (*RunStream, error) {
	c.opened.Add(1)
	streamCtx, cancel := context.WithCancel(metadata.NewOutgoingContext(ctx, md))
	stream, err := c.agent.Run(streamCtx, grpc.ForceCodec(agentpb.Codec{}))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: open run stream: %v", agenterr.ErrTransport, err)
	}
	return &RunStream{stream: stream, cancel: cancel}, nil
}

// Opened reports how many streams were requested over this client's lifetime.
func (c *Client) Opened() int {
	return int(c.opened.Load())
}

// Close closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// RunStream is one bidi Run call. Send is not safe for concurrent use; Recv
// may run concurrently with Send.
type RunStream struct {
	stream agentpb.AgentService_RunClient
	cancel context.CancelFunc
}

// Send writes one client frame.
func (s *RunStream) Send(m *agentpb.AgentClientMessage) error {
	if err := s.stream.Send(m); err != nil {
		return fmt.Errorf("%w: send %s: %v", agenterr.ErrTransport, m.Kind(), describe(err))
	}
	return nil
}

// Recv returns the next raw server frame, or io.EOF once the server has
// finished the call cleanly. Decoding is left to the caller so a malformed
// frame surfaces as agenterr.ErrProtocolDecode instead of a gRPC status.
func (s *RunStream) Recv() ([]byte, error) {
	var f agentpb.Frame
	if err := s.stream.RecvMsg(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: recv: %v", agenterr.ErrTransport, describe(err))
	}
	return f, nil
}

// CloseSend half-closes the stream; the server may still send.
func (s *RunStream) CloseSend() error {
	return s.stream.CloseSend()
}

// Close aborts the call. Safe to call more than once.
func (s *RunStream) Close() {
	s.cancel()
}

func describe(err error) string {
	if st, ok := status.FromError(err); ok {
		return fmt.Sprintf("%s: %s", st.Code(), st.Message())
	}
	return err.Error()
}
