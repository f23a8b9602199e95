package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/thomas-vilte/mischief/internal/ai"
	"github.com/thomas-vilte/mischief/internal/ai/gemini"
	"github.com/thomas-vilte/mischief/internal/commands/global"
	"github.com/thomas-vilte/mischief/internal/commands/roast"
	"github.com/thomas-vilte/mischief/internal/config"
	"github.com/thomas-vilte/mischief/internal/ui"
)

func newReviewer(ctx context.Context, apiKey, model string) (ai.CodeReviewer, error) {
	r, err := gemini.NewGeminiReviewer(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func main() {
	homeDir, _ := os.UserHomeDir()
	cfg, t, err := global.Load(homeDir, os.Stderr, os.LookupEnv)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not resolve working directory: %v\n", err)
		os.Exit(1)
	}

	var cacheDir string
	if homeDir != "" {
		cacheDir = filepath.Join(config.Dir(homeDir), "cache")
	}

	cmd := roast.NewRoastCommandFactory(newReviewer, cwd, cacheDir, global.NewRand()).CreateCommand(t, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := global.Execute(ctx, cmd, os.Args, ui.NewTheme("roast", ui.HexHonest), t)
	stop()
	os.Exit(code)
}
