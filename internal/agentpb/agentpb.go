// Package agentpb holds the agent.v1 wire types generated from agent.proto,
// plus constructors for the frames the client sends.
package agentpb

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/agentpb/agent.proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// NewRunRequest builds the frame that opens a session. The conversation state
// and MCP toolset are sent present but empty.
func NewRunRequest(conversationID, userText, modelName string) *AgentClientMessage {
	return &AgentClientMessage{Message: &AgentClientMessage_RunRequest{RunRequest: &AgentRunRequest{
		ConversationState: &ConversationStateStructure{},
		Action: &ConversationAction{UserMessageAction: &UserMessageAction{
			UserMessage: &UserMessage{Text: userText},
		}},
		ModelDetails:   &ModelDetails{ModelName: modelName},
		McpTools:       &McpTools{},
		ConversationId: conversationID,
	}}}
}

// NewExecReply wraps rc in a success result answering exec id.
func NewExecReply(id uint32, execID string, rc *RequestContext) *AgentClientMessage {
	return &AgentClientMessage{Message: &AgentClientMessage_ExecClientMessage{ExecClientMessage: &ExecClientMessage{
		Id:     id,
		ExecId: execID,
		RequestContextResult: &RequestContextResult{Result: &RequestContextResult_Success{
			Success: &RequestContextSuccess{RequestContext: rc},
		}},
	}}}
}

// NewStreamClose builds the control frame that must follow an exec reply.
func NewStreamClose(id uint32) *AgentClientMessage {
	return &AgentClientMessage{Message: &AgentClientMessage_ExecClientControlMessage{
		ExecClientControlMessage: &ExecClientControlMessage{Message: &ExecClientControlMessage_StreamClose{
			StreamClose: &ExecClientStreamClose{Id: id},
		}},
	}}
}

// Kind names the active variant, for logs.
func (x *AgentClientMessage) Kind() string {
	switch x.GetMessage().(type) {
	case *AgentClientMessage_RunRequest:
		return "run_request"
	case *AgentClientMessage_ExecClientMessage:
		return "exec_client_message"
	case *AgentClientMessage_ExecClientControlMessage:
		return "exec_client_control_message"
	default:
		return "empty"
	}
}

// Kind names the active variant, for logs. A frame whose only fields are ones
// this client does not model is "unknown".
func (x *AgentServerMessage) Kind() string {
	switch x.GetMessage().(type) {
	case *AgentServerMessage_ExecServerMessage:
		return "exec_server_message"
	case *AgentServerMessage_InteractionUpdate:
		return "interaction_update"
	case *AgentServerMessage_ConversationCheckpointUpdate:
		return "conversation_checkpoint_update"
	}
	if len(x.UnknownFieldNumbers()) > 0 {
		return "unknown"
	}
	return "empty"
}

// UnknownFieldNumbers lists the field numbers carried in x's unknown set.
func (x *AgentServerMessage) UnknownFieldNumbers() []int32 {
	if x == nil {
		return nil
	}
	var nums []int32
	b := x.ProtoReflect().GetUnknown()
	for len(b) > 0 {
		num, _, n := protowire.ConsumeField(b)
		if n < 0 {
			break
		}
		nums = append(nums, int32(num))
		b = b[n:]
	}
	return nums
}

// UpdateKind is the active variant of an InteractionUpdate.
type UpdateKind int

const (
	UpdateOther UpdateKind = iota
	UpdateTextDelta
	UpdateThinkingDelta
	UpdateThinkingCompleted
	UpdateTokenDelta
	UpdateTurnEnded
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateTextDelta:
		return "text-delta"
	case UpdateThinkingDelta:
		return "thinking-delta"
	case UpdateThinkingCompleted:
		return "thinking-completed"
	case UpdateTokenDelta:
		return "token-delta"
	case UpdateTurnEnded:
		return "turn-ended"
	default:
		return "other"
	}
}

// Kind reports which update x carries.
func (x *InteractionUpdate) Kind() UpdateKind {
	switch x.GetMessage().(type) {
	case *InteractionUpdate_TextDelta:
		return UpdateTextDelta
	case *InteractionUpdate_ThinkingDelta:
		return UpdateThinkingDelta
	case *InteractionUpdate_ThinkingCompleted:
		return UpdateThinkingCompleted
	case *InteractionUpdate_TokenDelta:
		return UpdateTokenDelta
	case *InteractionUpdate_TurnEnded:
		return UpdateTurnEnded
	default:
		return UpdateOther
	}
}

// Count returns the number of directories (including x) and files in the tree.
func (x *ProjectLayout) Count() (dirs, files int) {
	if x == nil {
		return 0, 0
	}
	dirs, files = 1, len(x.ChildrenFiles)
	for _, d := range x.ChildrenDirs {
		dd, ff := d.Count()
		dirs += dd
		files += ff
	}
	return dirs, files
}
