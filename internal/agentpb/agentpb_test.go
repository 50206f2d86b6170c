package agentpb

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestStreamCloseWireBytes(t *testing.T) {
	b, err := proto.Marshal(NewStreamClose(7))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// field 3 { field 1 { field 1 = 7 } }
	want := []byte{0x1a, 0x04, 0x0a, 0x02, 0x08, 0x07}
	if !bytes.Equal(b, want) {
		t.Errorf("bytes = % x, want % x", b, want)
	}

	b, _ = proto.Marshal(NewStreamClose(0))
	if want := []byte{0x1a, 0x02, 0x0a, 0x00}; !bytes.Equal(b, want) {
		t.Errorf("zero id bytes = % x, want % x", b, want)
	}
}

// fieldBodies maps each length-delimited field in b to its body.
func fieldBodies(t *testing.T, b []byte) map[protowire.Number][]byte {
	t.Helper()
	out := map[protowire.Number][]byte{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			t.Fatalf("bad tag: %v", protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			t.Fatalf("bad field %d: %v", num, protowire.ParseError(n))
		}
		out[num] = v
		b = b[n:]
	}
	return out
}

func TestRunRequestCarriesEmptyStateAndTools(t *testing.T) {
	msg := NewRunRequest("conv-1", "Can you say the days of the week?", "default")
	b, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	body, ok := fieldBodies(t, b)[1]
	if !ok {
		t.Fatal("run_request missing")
	}
	fields := fieldBodies(t, body)
	for _, num := range []protowire.Number{1, 4} {
		v, ok := fields[num]
		if !ok {
			t.Errorf("field %d missing, empty submessages must still be present", num)
		} else if len(v) != 0 {
			t.Errorf("field %d has %d bytes, want empty", num, len(v))
		}
	}

	var decoded AgentClientMessage
	if err := proto.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	run := decoded.GetRunRequest()
	if run == nil {
		t.Fatalf("kind = %s, want run_request", decoded.Kind())
	}
	text := run.GetAction().GetUserMessageAction().GetUserMessage().GetText()
	if run.GetConversationId() != "conv-1" || run.GetModelDetails().GetModelName() != "default" || text != "Can you say the days of the week?" {
		t.Errorf("decoded = %v", run)
	}
}

func TestExecReplyPreservesLayoutOrder(t *testing.T) {
	rc := &RequestContext{
		WorkspacePath:      "/w",
		SharedNotesListing: "(none)",
		Env: &RequestContextEnv{
			OsVersion:      "linux 6.10",
			WorkspacePaths: []string{"/w"},
			Shell:          "zsh",
		},
		GitRepos: []*GitRepo{{Path: "/w", Status: "On branch main\n"}},
		ProjectLayouts: []*ProjectLayout{{
			AbsPath:               "/w",
			ChildrenWereProcessed: true,
			ChildrenFiles:         []*FileEntry{{Name: "a.go"}, {Name: "b.go"}},
			ChildrenDirs: []*ProjectLayout{
				{AbsPath: "/w/cmd", ChildrenWereProcessed: true, ChildrenFiles: []*FileEntry{{Name: "main.go"}}},
				{AbsPath: "/w/internal", ChildrenWereProcessed: false},
			},
		}},
	}
	sent := NewExecReply(3, "exec-3", rc)
	b, err := proto.Marshal(sent)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded AgentClientMessage
	if err := proto.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !proto.Equal(sent, &decoded) {
		t.Errorf("round trip changed the reply:\n%v\n%v", sent, &decoded)
	}

	exec := decoded.GetExecClientMessage()
	if exec.GetId() != 3 || exec.GetExecId() != "exec-3" {
		t.Errorf("id = %d exec_id = %q", exec.GetId(), exec.GetExecId())
	}
	root := exec.GetRequestContextResult().GetSuccess().GetRequestContext().GetProjectLayouts()[0]
	if root.ChildrenDirs[0].AbsPath != "/w/cmd" || root.ChildrenDirs[1].AbsPath != "/w/internal" {
		t.Errorf("dirs = %v", root.ChildrenDirs)
	}
	if dirs, files := root.Count(); dirs != 3 || files != 3 {
		t.Errorf("Count = %d dirs, %d files", dirs, files)
	}
}

func TestUnmarshalServerMessageVariants(t *testing.T) {
	tests := []struct {
		name string
		msg  *AgentServerMessage
		kind string
	}{
		{"exec", &AgentServerMessage{Message: &AgentServerMessage_ExecServerMessage{ExecServerMessage: &ExecServerMessage{Id: 1, ExecId: "e1", RequestContextArgs: &RequestContextArgs{}}}}, "exec_server_message"},
		{"text", &AgentServerMessage{Message: &AgentServerMessage_InteractionUpdate{InteractionUpdate: &InteractionUpdate{Message: &InteractionUpdate_TextDelta{TextDelta: &TextDeltaUpdate{Text: "Monday"}}}}}, "interaction_update"},
		{"checkpoint", &AgentServerMessage{Message: &AgentServerMessage_ConversationCheckpointUpdate{ConversationCheckpointUpdate: &ConversationCheckpointUpdate{}}}, "conversation_checkpoint_update"},
		{"empty", &AgentServerMessage{}, "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := proto.Marshal(tt.msg)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			got, err := UnmarshalServerMessage(b)
			if err != nil {
				t.Fatalf("UnmarshalServerMessage: %v", err)
			}
			if got.Kind() != tt.kind {
				t.Errorf("kind = %q, want %q", got.Kind(), tt.kind)
			}
		})
	}
}

func TestUnknownServerVariant(t *testing.T) {
	// field 9, empty body
	m, err := UnmarshalServerMessage([]byte{0x4a, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if m.Kind() != "unknown" {
		t.Errorf("kind = %q", m.Kind())
	}
	if got := m.UnknownFieldNumbers(); !slices.Equal(got, []int32{9}) {
		t.Errorf("unknown fields = %v", got)
	}
}

func TestUnknownFieldAfterUpdateVariant(t *testing.T) {
	// interaction_update { text_delta { text: "hi" }, field 9 {} }
	update := []byte{0x0a, 0x04, 0x0a, 0x02, 'h', 'i', 0x4a, 0x00}
	frame := append([]byte{0x0a, byte(len(update))}, update...)

	m, err := UnmarshalServerMessage(frame)
	if err != nil {
		t.Fatal(err)
	}
	upd := m.GetInteractionUpdate()
	if upd.Kind() != UpdateTextDelta {
		t.Fatalf("update kind = %s, want text-delta", upd.Kind())
	}
	if upd.GetTextDelta().GetText() != "hi" {
		t.Errorf("text = %q", upd.GetTextDelta().GetText())
	}
}

func TestKnownFieldWithOtherWireType(t *testing.T) {
	// exec_server_message { id as bytes [0x07], exec_id "x" }
	exec := []byte{0x0a, 0x01, 0x07, 0x12, 0x01, 'x'}
	frame := append([]byte{0x12, byte(len(exec))}, exec...)

	m, err := UnmarshalServerMessage(frame)
	if err != nil {
		t.Fatalf("UnmarshalServerMessage: %v", err)
	}
	got := m.GetExecServerMessage()
	if got.GetId() != 0 || got.GetExecId() != "x" {
		t.Errorf("exec = %v", got)
	}
	if len(got.ProtoReflect().GetUnknown()) == 0 {
		t.Error("mistyped id should be kept as an unknown field")
	}

	// exec_server_message sent as a varint at the top level
	m, err = UnmarshalServerMessage([]byte{0x10, 0x01})
	if err != nil {
		t.Fatalf("UnmarshalServerMessage: %v", err)
	}
	if m.Kind() != "unknown" {
		t.Errorf("kind = %q, want unknown", m.Kind())
	}
}

func TestUnmarshalServerMessageMalformed(t *testing.T) {
	cases := map[string][]byte{
		"truncated tag":   {0x80},
		"length overflow": {0x12, 0x10, 0x08},
		"bad inner field": {0x12, 0x02, 0x0a, 0x01},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalServerMessage(b)
			if !errors.Is(err, agenterr.ErrProtocolDecode) {
				t.Errorf("err = %v, want ErrProtocolDecode", err)
			}
		})
	}
}

func TestCodecFrameDoesNotAlias(t *testing.T) {
	var c Codec
	src := []byte{0x12, 0x00}
	var f Frame
	if err := c.Unmarshal(src, &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	src[0] = 0xff
	if f[0] != 0x12 {
		t.Errorf("frame aliases the transport buffer")
	}

	out, err := c.Marshal(NewStreamClose(0))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded AgentClientMessage
	if err := c.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal AgentClientMessage: %v", err)
	}
	if decoded.Kind() != "exec_client_control_message" {
		t.Errorf("kind = %q", decoded.Kind())
	}

	raw := Frame{0x80}
	if b, err := c.Marshal(&raw); err != nil || !bytes.Equal(b, raw) {
		t.Errorf("Marshal(Frame) = % x, %v", b, err)
	}
	if _, err := c.Marshal("not a message"); err == nil {
		t.Error("expected error marshaling a string")
	}
	if c.Name() != "proto" {
		t.Errorf("Name = %q", c.Name())
	}
}
