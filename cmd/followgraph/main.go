package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/haileyok/followgraph/followgraph"
	"github.com/haileyok/followgraph/internal/script"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const demoScript = `# three users, Baz followed twice
add Foo
add Bar
add Baz
follow Foo Bar
follow Foo Baz
follow Bar Baz
print
popular
recommend Foo
`

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "error loading .env:", err)
	}

	app := cli.App{
		Name:  "followgraph",
		Usage: "run follow graph scripts against an in-memory network",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max-users",
				EnvVars: []string{"FOLLOWGRAPH_MAX_USERS"},
				Value:   10,
			},
			&cli.IntFlag{
				Name:    "max-followees",
				EnvVars: []string{"FOLLOWGRAPH_MAX_FOLLOWEES"},
				Value:   followgraph.DefaultMaxFollowees,
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"FOLLOWGRAPH_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:    "seed",
				Usage:   "start with Foo, Bar and Baz already in the network",
				EnvVars: []string{"FOLLOWGRAPH_SEED"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "execute a script file, or stdin when the file is -",
				ArgsUsage: "<file|->",
				Action:    runScript,
			},
			{
				Name:   "demo",
				Usage:  "execute the built-in example script",
				Action: runDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var runScript = func(cmd *cli.Context) error {
	path := cmd.Args().First()
	if path == "" {
		return cli.Exit("run needs a script path or -", 2)
	}

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	return execute(cmd, in)
}

var runDemo = func(cmd *cli.Context) error {
	return execute(cmd, strings.NewReader(demoScript))
}

func execute(cmd *cli.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(cmd.Context)
	defer cancel()

	logger, err := newLogger(cmd.String("log-level"))
	if err != nil {
		return err
	}

	if err := validateCapacity(cmd.Int("max-users"), cmd.Int("max-followees")); err != nil {
		return err
	}

	go func() {
		exitSigs := make(chan os.Signal, 1)
		signal.Notify(exitSigs, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-exitSigs:
			logger.Info("received os exit signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	net := followgraph.New(followgraph.NetworkArgs{
		Logger:       logger,
		MaxUsers:     cmd.Int("max-users"),
		MaxFollowees: cmd.Int("max-followees"),
	})
	if cmd.Bool("seed") {
		net.Seed()
	}

	logger.Debug("starting script", "max_users", net.MaxUsers(), "seeded", cmd.Bool("seed"))

	if err := script.NewRunner(net, os.Stdout, logger).Run(ctx, in); err != nil {
		logger.Error("error running script", "error", err)
		return err
	}
	return nil
}

// loadDotEnv loads path into the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func validateCapacity(maxUsers, maxFollowees int) error {
	if maxUsers < 0 {
		return fmt.Errorf("invalid max-users %d: must not be negative", maxUsers)
	}
	if maxFollowees < 1 {
		return fmt.Errorf("invalid max-followees %d: must be at least 1", maxFollowees)
	}
	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	return logger.With("run", uuid.NewString()), nil
}
