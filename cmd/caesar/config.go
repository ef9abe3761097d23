package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"caesar/internal/ctxlog"
	"caesar/internal/session"
)

const (
	configEnv     = "CAESAR_CONFIG"
	defaultConfig = "caesar.yaml"
)

type Config struct {
	Log     ctxlog.Config         `yaml:"log"`
	Credits session.CreditsConfig `yaml:"credits"`
}

func DefaultConfig() Config {
	return Config{
		Credits: session.DefaultConfig().Credits,
	}
}

// configPath returns the config file to load and whether it must exist.
func configPath() (string, bool) {
	if p := os.Getenv(configEnv); p != "" {
		return p, true
	}
	return defaultConfig, false
}

func LoadConfig(ctx context.Context, filename string, required bool) (Config, error) {
	logger := ctxlog.Get(ctx)
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file, using defaults", "file", filename)
			return config, nil
		}
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	if body := documentBody(file); body != nil {
		// Decoding the node into the existing struct keeps defaults for absent keys.
		err = yaml.NodeToValue(body, &config, yaml.Strict())
		if err != nil {
			return Config{}, fmt.Errorf("yaml: %w", err)
		}
	}

	if _, err := ctxlog.ParseLevel(config.Log.Level); err != nil {
		return Config{}, fmt.Errorf("log: %w", err)
	}

	return config, nil
}

// documentBody returns the first document's body, or nil when the file
// holds nothing but blanks, comments or an explicit null.
func documentBody(file *ast.File) ast.Node {
	if len(file.Docs) == 0 {
		return nil
	}
	body := file.Docs[0].Body
	if body == nil {
		return nil
	}
	switch body.Type() {
	case ast.NullType, ast.CommentType:
		return nil
	}
	return body
}
