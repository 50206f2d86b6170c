package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/config"
	"github.com/ehrlich-b/agentstream/internal/driver"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"github.com/ehrlich-b/agentstream/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultPrompt = "Can you say the days of the week?"

// exitError carries a process exit code out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type rootFlags struct {
	configPath string
	envFile    string
	model      string
	workspace  string
	timeout    string
	logLevel   string
}

func main() {
	var f rootFlags

	root := &cobra.Command{
		Use:   "agentstream [prompt]",
		Short: "Run one prompt against the hosted agent",
		Long: "Exchanges CURSOR_API_KEY for an access token, opens one agent stream, answers the\n" +
			"agent's request for workspace context and prints the streamed reply.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := defaultPrompt
			if len(args) == 1 {
				prompt = args[0]
			}
			return runPrompt(cmd.Context(), f, prompt)
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default ~/.agentstream/config.yaml)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().StringVar(&f.envFile, "env-file", config.DefaultEnvFile, "dotenv file consulted when CURSOR_API_KEY is unset")
	root.Flags().StringVar(&f.model, "model", "", "model name sent with the run request")
	root.PersistentFlags().StringVar(&f.workspace, "workspace", "", "workspace root to describe (default parent of the working directory)")
	root.Flags().StringVar(&f.timeout, "timeout", "", "session ceiling, e.g. 30s")

	root.AddCommand(
		mockAgentCmd(&f),
		contextCmd(&f),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	var exit *exitError
	switch {
	case err == nil:
	case errors.As(err, &exit):
		os.Exit(exit.code)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(driver.ExitCode(failure(err)))
	}
}

func failure(err error) (session.Outcome, error) {
	return session.Outcome{Status: session.Failed, Err: err}, err
}

// loadConfig applies the shared flags on top of the config file.
func loadConfig(f rootFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel()
	}
	if f.model != "" {
		cfg.Agent.Model = f.model
	}
	if f.workspace != "" {
		cfg.Workspace.Root = f.workspace
	}
	if f.timeout != "" {
		cfg.Agent.Timeout = f.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", agenterr.ErrConfig, err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, fmt.Errorf("%w: open log: %v", agenterr.ErrConfig, err)
	}
	return cfg, nil
}

func runPrompt(ctx context.Context, f rootFlags, prompt string) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	out, err := driver.Run(ctx, driver.NewDeps(cfg, f.envFile), driver.Params{
		UserText:      prompt,
		Model:         cfg.Agent.Model,
		ClientVersion: cfg.Agent.ClientVersion,
		Timeout:       cfg.SessionTimeout(),
		Grace:         cfg.TeardownGrace(),
		OnUpdate:      updatePrinter{out: os.Stdout, diag: os.Stderr}.print,
	})

	code := driver.ExitCode(out, err)
	if code != driver.ExitOK {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stderr, "agentstream:", driver.Describe(out, err))
		return &exitError{code: code}
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

// defaultLogLevel keeps an interactive terminal to warnings so log lines do not
// break up the streamed reply.
func defaultLogLevel() string {
	if term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd())) {
		return "warn"
	}
	return "info"
}

// updatePrinter renders interaction updates. The reply text goes to out;
// thinking and token accounting go to diag so out carries only the reply.
type updatePrinter struct {
	out  io.Writer
	diag io.Writer
}

func (p updatePrinter) print(u *agentpb.InteractionUpdate) {
	switch m := u.GetMessage().(type) {
	case *agentpb.InteractionUpdate_TextDelta:
		fmt.Fprint(p.out, m.TextDelta.GetText())
	case *agentpb.InteractionUpdate_ThinkingDelta:
		fmt.Fprint(p.diag, "[thinking] "+m.ThinkingDelta.GetText())
	case *agentpb.InteractionUpdate_ThinkingCompleted:
		fmt.Fprintf(p.diag, "\n[thinking done in %d ms]\n", m.ThinkingCompleted.GetThinkingDurationMs())
	case *agentpb.InteractionUpdate_TokenDelta:
		fmt.Fprintf(p.diag, "[tokens +%d]\n", m.TokenDelta.GetTokens())
	case *agentpb.InteractionUpdate_TurnEnded:
		logger.Info("turn ended")
	default:
		logger.Debug("unrendered update", "kind", u.Kind())
	}
}
