package main

import (
	"fmt"
	"net"

	"github.com/ehrlich-b/agentstream/internal/logger"
	"github.com/ehrlich-b/agentstream/internal/transport"
	"github.com/spf13/cobra"
)

const defaultMockReply = "Monday Tuesday Wednesday Thursday Friday Saturday Sunday"

func mockAgentCmd(f *rootFlags) *cobra.Command {
	var listen, reply string

	cmd := &cobra.Command{
		Use:   "mock-agent",
		Short: "Serve a scripted agent for local runs",
		Long: "Serves agent.v1.AgentService/Run without TLS. Point a client at it with\n" +
			"agent.host set to the listen address and agent.insecure: true.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := *f
			if flags.logLevel == "" {
				flags.logLevel = "info"
			}
			if _, err := loadConfig(flags); err != nil {
				return err
			}
			ln, err := net.Listen("tcp", listen)
			if err != nil {
				return fmt.Errorf("listen %s: %w", listen, err)
			}
			logger.Info("mock agent listening", "addr", ln.Addr().String())
			return transport.NewServer(transport.ScriptedAgent(reply)).Serve(cmd.Context(), ln)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:7777", "listen address")
	cmd.Flags().StringVar(&reply, "reply", defaultMockReply, "text streamed back after the exec reply")
	return cmd
}
