package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thomas-vilte/mischief/internal/commands/alibi"
	"github.com/thomas-vilte/mischief/internal/commands/global"
	"github.com/thomas-vilte/mischief/internal/git"
	"github.com/thomas-vilte/mischief/internal/ui"
)

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

	cmd := alibi.NewAlibiCommandFactory(git.NewGitService(cwd), cwd, global.NewRand()).CreateCommand(t, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := global.Execute(ctx, cmd, os.Args, ui.NewTheme("alibi", ui.HexAlibi), t)
	stop()
	os.Exit(code)
}
