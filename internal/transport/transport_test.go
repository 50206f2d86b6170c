package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startPeer(t *testing.T, h RunHandler) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewServer(h)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Serve(ctx, lis)
		close(done)
	}()

	c, err := Dial(Options{
		Target:   "passthrough:///bufnet",
		Insecure: true,
		Dialer: func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		},
	})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() {
		c.Close()
		cancel()
		<-done
	})
	return c
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestOpenSendsMetadata(t *testing.T) {
	got := make(chan metadata.MD, 1)
	c := startPeer(t, func(p *PeerStream) error {
		got <- p.Metadata()
		return nil
	})

	md := metadata.Pairs("authorization", "Bearer tok123", "x-request-id", "req-1")
	s, err := c.Open(testContext(t), md)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if _, err := s.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("Recv = %v, want io.EOF", err)
	}

	peerMD := <-got
	if v := peerMD.Get("authorization"); len(v) != 1 || v[0] != "Bearer tok123" {
		t.Errorf("authorization = %v", v)
	}
	if v := peerMD.Get("x-request-id"); len(v) != 1 || v[0] != "req-1" {
		t.Errorf("x-request-id = %v", v)
	}
	if v := peerMD.Get("user-agent"); len(v) == 0 || !strings.HasPrefix(v[0], DefaultUserAgent) {
		t.Errorf("user-agent = %v", v)
	}
	if c.Opened() != 1 {
		t.Errorf("Opened = %d", c.Opened())
	}
}

func TestScriptedAgentConversation(t *testing.T) {
	c := startPeer(t, ScriptedAgent("Monday Tuesday"))
	s, err := c.Open(testContext(t), metadata.MD{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Send(agentpb.NewRunRequest("conv", "days?", "default")); err != nil {
		t.Fatalf("Send run: %v", err)
	}
	frame, err := s.Recv()
	if err != nil {
		t.Fatalf("Recv exec: %v", err)
	}
	msg, err := agentpb.UnmarshalServerMessage(frame)
	if err != nil {
		t.Fatal(err)
	}
	exec := msg.GetExecServerMessage()
	if exec == nil {
		t.Fatalf("first frame = %s", msg.Kind())
	}

	rc := &agentpb.RequestContext{WorkspacePath: "/w"}
	if err := s.Send(agentpb.NewExecReply(exec.GetId(), exec.GetExecId(), rc)); err != nil {
		t.Fatalf("Send reply: %v", err)
	}
	if err := s.Send(agentpb.NewStreamClose(exec.GetId())); err != nil {
		t.Fatalf("Send close: %v", err)
	}

	var text string
	for {
		frame, err := s.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		m, err := agentpb.UnmarshalServerMessage(frame)
		if err != nil {
			t.Fatal(err)
		}
		text += m.GetInteractionUpdate().GetTextDelta().GetText()
	}
	if text != "Monday Tuesday " {
		t.Errorf("text = %q", text)
	}
}

func TestRecvServerErrorIsTransport(t *testing.T) {
	c := startPeer(t, func(p *PeerStream) error {
		return status.Error(codes.Unauthenticated, "token expired")
	})
	s, err := c.Open(testContext(t), metadata.MD{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	_, err = s.Recv()
	if !errors.Is(err, agenterr.ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
}

func TestRecvPassesRawFrames(t *testing.T) {
	c := startPeer(t, func(p *PeerStream) error {
		return p.SendRaw([]byte{0x80})
	})
	s, err := c.Open(testContext(t), metadata.MD{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	frame, err := s.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if len(frame) != 1 || frame[0] != 0x80 {
		t.Errorf("frame = % x", frame)
	}
}

func TestHandlerPanicIsInternal(t *testing.T) {
	c := startPeer(t, func(p *PeerStream) error {
		panic("scripted failure")
	})
	s, err := c.Open(testContext(t), metadata.MD{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	_, err = s.Recv()
	if !errors.Is(err, agenterr.ErrTransport) || !strings.Contains(err.Error(), codes.Internal.String()) {
		t.Fatalf("err = %v, want ErrTransport carrying Internal", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := startPeer(t, func(p *PeerStream) error {
		<-p.Context().Done()
		return nil
	})
	s, err := c.Open(testContext(t), metadata.MD{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Close()
	s.Close()
	if _, err := s.Recv(); err == nil {
		t.Error("Recv after Close should fail")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestDialRequiresTarget(t *testing.T) {
	if _, err := Dial(Options{}); !errors.Is(err, agenterr.ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}
