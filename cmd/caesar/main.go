package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"caesar/internal/banner"
	"caesar/internal/buildinfo"
	"caesar/internal/ctxlog"
	"caesar/internal/prompt"
	"caesar/internal/rec"
	"caesar/internal/session"
)

func run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	defer rec.Error(&err)

	path, required := configPath()
	c, err := LoadConfig(ctx, path, required)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, logFile, err := ctxlog.Setup(ctx, "caesar", c.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer ctxlog.Close(ctx, "log file", logFile)

	logger := ctxlog.Get(ctx)
	logger.Info("starting session", "version", buildinfo.Version, "config", path)

	err = session.Run(ctx, prompt.New(in, out), banner.New(out), session.Config{
		Credits: c.Credits,
	})
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	return nil
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "caesar",
		Short: "Shift the letters of a phrase with the Caesar cipher",
		Long: `caesar asks for a phrase and a whole number, then prints the phrase with
every letter moved that many places along the alphabet. Case is kept and
anything that is not an ASCII letter is left as is.

Settings are read from $` + configEnv + ` or ./` + defaultConfig + ` when present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.GitCommit, buildinfo.BuildDate),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func main() {
	err := newRootCommand().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "caesar: %v\n", err)
		os.Exit(1)
	}
}
