// Package session runs one interactive Caesar shift session: it asks for a
// phrase and a shift, prints the shifted phrase and optionally the credits.
package session

import (
	"context"
	"fmt"

	"caesar/internal/banner"
	"caesar/internal/ctxlog"
	"caesar/internal/prompt"
	"caesar/internal/rec"
	"caesar/internal/rotate"
)

type Config struct {
	Credits CreditsConfig
}

type CreditsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Programmer string `yaml:"programmer"`
	Date       string `yaml:"date"`
}

func DefaultConfig() Config {
	return Config{
		Credits: CreditsConfig{
			Enabled:    true,
			Programmer: "Ana Atala",
			Date:       "June 06, 2021",
		},
	}
}

func Run(ctx context.Context, p *prompt.Prompter, r *banner.Renderer, config Config) (err error) {
	defer rec.Wrap(&err, "session: %w")

	logger := ctxlog.Get(ctx)

	if err := p.WriteLine(r.Banner()); err != nil {
		return err
	}

	if err := p.Writef("\n\nWrite your super secret phrase:\n\t"); err != nil {
		return err
	}
	phrase, err := p.ReadLine()
	if err != nil {
		return fmt.Errorf("phrase: %w", err)
	}

	if err := p.Writef("Write whichever integer increment you want:\n\t"); err != nil {
		return err
	}
	shift, err := p.ReadShift()
	if err != nil {
		return fmt.Errorf("shift: %w", err)
	}

	ctx = ctxlog.With(ctx, "shift", shift.String())
	logger = ctxlog.Get(ctx)

	logger.Debug("transforming phrase", "length", len(phrase))
	code := rotate.TransformBig(phrase, shift)

	if err := p.WriteLine("\n" + r.Result(phrase, shift, code) + "\n"); err != nil {
		return err
	}

	if config.Credits.Enabled {
		if err := p.WriteLine(r.Credits(config.Credits.Programmer, config.Credits.Date) + "\n"); err != nil {
			return err
		}
	}

	logger.Info("session completed", "length", len(phrase))
	return nil
}
