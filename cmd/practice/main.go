package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/muesli/cancelreader"
	"github.com/urfave/cli/v3"

	"practice/cmd/practice/exercise"
	"practice/cmd/practice/shared"
	"practice/cmd/practice/version"
	"practice/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	stdin, release := shared.NewStdin(ctx)
	defer release()

	env := &exercise.Env{In: stdin, Out: os.Stdout, Config: cfg.Console}
	app := newApp(env)

	if err := app.Run(ctx, os.Args); err != nil {
		release()
		code := exitCode(err)
		if code == 1 {
			shared.ErrorMsg("%s\n", err)
		}
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status. Interrupted
// reads exit like a SIGINT-terminated shell command.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cancelreader.ErrCanceled), errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}

func newApp(env *exercise.Env) *cli.Command {
	return &cli.Command{
		Name:  "practice",
		Usage: "Introductory console exercises",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  exercise.NoColorFlag,
				Usage: "Disable colored prompts",
			},
		},
		Commands: append(exercise.GetCommands(env), version.GetCommand()),
	}
}
