package transport

import (
	"errors"
	"io"
	"strings"

	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ScriptedAgent answers a Run call the way the hosted agent answers a simple
// prompt: it asks for request context, waits for the exec reply and its
// stream close, streams reply word by word and ends the call.
func ScriptedAgent(reply string) RunHandler {
	return func(p *PeerStream) error {
		first, err := p.Recv()
		if err != nil {
			return err
		}
		run := first.GetRunRequest()
		if run == nil {
			return status.Errorf(codes.InvalidArgument, "first frame is %s, want run_request", first.Kind())
		}
		logger.Info("mock agent: run request",
			"conversation", run.GetConversationId(),
			"model", run.GetModelDetails().GetModelName(),
			"text", run.GetAction().GetUserMessageAction().GetUserMessage().GetText())

		exec := &agentpb.ExecServerMessage{Id: 1, ExecId: "exec-1", RequestContextArgs: &agentpb.RequestContextArgs{}}
		if err := p.Send(ExecRequest(exec)); err != nil {
			return err
		}

		for closed := false; !closed; {
			m, err := p.Recv()
			if errors.Is(err, io.EOF) {
				return status.Error(codes.FailedPrecondition, "client half-closed before exec stream close")
			}
			if err != nil {
				return err
			}
			switch pl := m.GetMessage().(type) {
			case *agentpb.AgentClientMessage_ExecClientMessage:
				if rc := pl.ExecClientMessage.GetRequestContextResult().GetSuccess().GetRequestContext(); rc != nil {
					var dirs, files int
					for _, l := range rc.GetProjectLayouts() {
						d, f := l.Count()
						dirs, files = dirs+d, files+f
					}
					logger.Info("mock agent: request context", "workspace", rc.GetWorkspacePath(), "dirs", dirs, "files", files, "git_repos", len(rc.GetGitRepos()))
				}
			case *agentpb.AgentClientMessage_ExecClientControlMessage:
				closed = pl.ExecClientControlMessage.GetStreamClose() != nil
			default:
				logger.Warn("mock agent: unexpected frame", "kind", m.Kind())
			}
		}

		for _, word := range strings.Fields(reply) {
			upd := &agentpb.InteractionUpdate{Message: &agentpb.InteractionUpdate_TextDelta{
				TextDelta: &agentpb.TextDeltaUpdate{Text: word + " "},
			}}
			if err := p.Send(Update(upd)); err != nil {
				return err
			}
		}
		return p.Send(Update(&agentpb.InteractionUpdate{Message: &agentpb.InteractionUpdate_TurnEnded{
			TurnEnded: &agentpb.TurnEndedUpdate{},
		}}))
	}
}

// ExecRequest wraps exec in a server frame.
func ExecRequest(exec *agentpb.ExecServerMessage) *agentpb.AgentServerMessage {
	return &agentpb.AgentServerMessage{Message: &agentpb.AgentServerMessage_ExecServerMessage{ExecServerMessage: exec}}
}

// Update wraps u in a server frame.
func Update(u *agentpb.InteractionUpdate) *agentpb.AgentServerMessage {
	return &agentpb.AgentServerMessage{Message: &agentpb.AgentServerMessage_InteractionUpdate{InteractionUpdate: u}}
}
