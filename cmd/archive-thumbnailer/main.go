package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ironsheep/archive-thumbnailer/internal/thumbnail"
)

const appName = "archive-thumbnailer"

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      appName,
		Usage:     "Write a PNG thumbnail of the first image inside a ZIP or RAR archive",
		ArgsUsage: "<input_path> <output_path>",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging on stderr",
			},
			&cli.IntFlag{
				Name:   "max-width",
				Value:  thumbnail.DefaultMaxWidth,
				Usage:  "Maximum thumbnail width in pixels",
				Action: positive("max-width"),
			},
			&cli.IntFlag{
				Name:   "max-height",
				Value:  thumbnail.DefaultMaxHeight,
				Usage:  "Maximum thumbnail height in pixels",
				Action: positive("max-height"),
			},
		},
		Commands: []*cli.Command{
			newVersionCommand(),
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger, err := createLogger(command.Bool("debug"))
			if err != nil {
				return nil, err
			}
			return withLogger(ctx, logger), nil
		},
		After: func(ctx context.Context, command *cli.Command) error {
			if logger := tryLogger(ctx); logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Action: run,
		// Errors are reported once by main.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// positive rejects non-positive values for the named flag.
func positive(name string) func(context.Context, *cli.Command, int) error {
	return func(_ context.Context, _ *cli.Command, v int) error {
		if v <= 0 {
			return fmt.Errorf("--%s must be greater than zero, got %d", name, v)
		}
		return nil
	}
}

func run(ctx context.Context, command *cli.Command) error {
	if command.NArg() != 2 {
		return fmt.Errorf("usage: %s <input_path> <output_path>", appName)
	}
	input, output := command.Args().Get(0), command.Args().Get(1)

	logger := getLogger(ctx)
	logger.Debug("generating thumbnail",
		zap.String("input", input),
		zap.String("output", output),
		zap.String("version", Version),
	)

	g := thumbnail.New(
		thumbnail.WithLogger(logger),
		thumbnail.WithMaxSize(command.Int("max-width"), command.Int("max-height")),
	)
	return g.Generate(ctx, input, output)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(thumbnail.ExitCode(err))
}
