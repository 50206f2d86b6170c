package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RunHandler serves one Run call on the agent side.
type RunHandler func(stream *PeerStream) error

// PeerStream is the agent's end of a Run call.
type PeerStream struct {
	stream agentpb.AgentService_RunServer
}

// Context is the call context; it is cancelled when the client goes away.
func (p *PeerStream) Context() context.Context {
	return p.stream.Context()
}

// Metadata is the per-call metadata the client attached.
func (p *PeerStream) Metadata() metadata.MD {
	md, _ := metadata.FromIncomingContext(p.stream.Context())
	return md
}

// Recv reads the next client frame; io.EOF after the client half-closes.
func (p *PeerStream) Recv() (*agentpb.AgentClientMessage, error) {
	return p.stream.Recv()
}

// Send writes one server frame.
func (p *PeerStream) Send(m *agentpb.AgentServerMessage) error {
	return p.stream.Send(m)
}

// SendRaw writes pre-encoded bytes, including deliberately malformed ones.
func (p *PeerStream) SendRaw(b []byte) error {
	f := agentpb.Frame(b)
	return p.stream.SendMsg(&f)
}

// Server hosts an AgentService in-process: for local development against a
// scripted agent and for tests.
type Server struct {
	agentpb.UnimplementedAgentServiceServer

	handler RunHandler
	grpc    *grpc.Server
}

func NewServer(h RunHandler) *Server {
	s := &Server{handler: h}
	s.grpc = grpc.NewServer(
		grpc.ForceServerCodec(agentpb.Codec{}),
		grpc.ChainStreamInterceptor(recoveryStream),
	)
	agentpb.RegisterAgentServiceServer(s.grpc, s)
	return s
}

// Run implements agentpb.AgentServiceServer.
func (s *Server) Run(stream agentpb.AgentService_RunServer) error {
	return s.handler(&PeerStream{stream: stream})
}

func recoveryStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 16384)
			n := runtime.Stack(stack, false)
			logger.Error("agent handler panic", "method", info.FullMethod, "panic", r, "stack", string(stack[:n]))
			err = status.Errorf(codes.Internal, "agent panic in %s: %v", info.FullMethod, r)
		}
	}()
	return handler(srv, ss)
}

// Serve accepts calls on ln until ctx is cancelled, then drains for up to five
// seconds before forcing the remaining calls closed.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpc.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		stopped := make(chan struct{})
		go func() {
			s.grpc.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			s.grpc.Stop()
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve agent: %w", err)
	}
}

// Stop closes every listener and call immediately.
func (s *Server) Stop() {
	s.grpc.Stop()
}
