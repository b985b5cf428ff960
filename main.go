package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesmstone/ghostclaw/internal/format"
	"github.com/jamesmstone/ghostclaw/internal/report"
	"github.com/jamesmstone/ghostclaw/internal/telegram"
)

// errChecksFailed marks a completed run with at least one failing check.
// It carries no message of its own: the reporter already printed the details.
var errChecksFailed = errors.New("one or more checks failed")

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "ghostclaw-e2e",
		Short: "End-to-end checks against the Telegram Bot API",
		Long: `Runs an ordered sequence of live checks against the Telegram Bot API:
token validity, update polling, message sending, webhook introspection and
command listing. Exits 0 when every executed check passed.

Credentials come from TELEGRAM_BOT_TOKEN (falling back to a dotenv file) and
the optional TELEGRAM_TEST_CHAT_ID. Without a token the run is skipped, not
failed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "dotenv file consulted when "+envToken+" is unset")
	f.StringVar(&cfg.APIRoot, "api-root", cfg.APIRoot, "Bot API origin")
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout for each API call")
	f.StringVar(&cfg.ChatID, "chat-id", "", "target chat for the send check (default $"+envChatID+")")
	return cmd
}

// run resolves credentials and drives the check sequence.
//
// Exit semantics: a missing token skips the whole run successfully, an
// identity failure or any failed check yields errChecksFailed.
func run(ctx context.Context, cfg *Config, out io.Writer) error {
	rep := report.New(out)
	rep.Info("Starting Telegram E2E checks...")

	cfg.resolveCredentials()
	if cfg.Token == "" {
		rep.Skip("no " + envToken + " found - skipping Telegram checks")
		fmt.Fprintf(out, "\nTo run Telegram checks, set the %s environment variable\n", envToken)
		return nil
	}
	rep.Info("Using token: " + format.MaskToken(cfg.Token))

	runner := &checkRunner{
		api: telegram.NewClient(cfg.Token, cfg.APIRoot, &http.Client{Timeout: cfg.Timeout}),
		rep: rep,
		cfg: cfg,
		now: time.Now,
	}
	if !runner.run(ctx) || !rep.OK() {
		return errChecksFailed
	}
	return nil
}

func main() {
	setupLogger()
	defer closeLogger()

	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		closeLogger()
		os.Exit(1)
	}
}
