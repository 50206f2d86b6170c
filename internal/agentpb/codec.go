package agentpb

import (
	"fmt"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"google.golang.org/protobuf/proto"
)

// Frame is one undecoded message body. Receiving into a Frame defers decoding
// to the caller, so a malformed frame is reported as a protocol error rather
// than a gRPC status.
type Frame []byte

// Codec is the proto codec extended with Frame pass-through. It is forced per
// call and per server, so it never replaces the process-wide proto codec.
type Codec struct{}

// Marshal encodes a proto message, or returns a Frame's bytes unchanged.
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *Frame:
		return *m, nil
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("agentpb codec: cannot marshal %T", v)
	}
}

// Unmarshal copies data into a *Frame or decodes it into a proto message.
// gRPC may reuse data after this returns, so nothing aliases it.
func (Codec) Unmarshal(data []byte, v any) error {
	switch dst := v.(type) {
	case *Frame:
		*dst = append(Frame(nil), data...)
		return nil
	case proto.Message:
		return proto.Unmarshal(data, dst)
	default:
		return fmt.Errorf("agentpb codec: cannot unmarshal into %T", v)
	}
}

// Name keeps the standard content-subtype so the peer sees application/grpc+proto.
func (Codec) Name() string {
	return "proto"
}

// UnmarshalServerMessage decodes one frame from the agent. Fields this client
// does not model, including known fields arriving with another wire type, are
// kept as unknown fields rather than rejected.
func UnmarshalServerMessage(b []byte) (*AgentServerMessage, error) {
	m := new(AgentServerMessage)
	if err := proto.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("%w: AgentServerMessage: %v", agenterr.ErrProtocolDecode, err)
	}
	return m, nil
}
