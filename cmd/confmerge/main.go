// Package main is the entry point for confmerge, which merges configuration files
// and prints or saves the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	conf "github.com/0xalexb/hjarta-conf"
	jsonhandler "github.com/0xalexb/hjarta-conf/handler/json"
	"github.com/0xalexb/hjarta-conf/logging"

	"github.com/urfave/cli/v2"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(append([]string{"confmerge"}, args...))
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "error: %v\n", err)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return exitFailure
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "confmerge",
		Usage:     "merge configuration files and print or save the result",
		UsageText: "confmerge [options] path...\n\nPaths are merged in order. Prefix a path with ? to make it optional.",
		Version:   fmt.Sprintf("%s (built: %s)", conf.Version, conf.CompiledAt),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags(),
		Action: func(c *cli.Context) error {
			return merge(c, stdout, stderr)
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return cli.Exit(err.Error(), exitUsage)
		},
		// Errors are reported by run so the process is never exited from inside the app.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the merged configuration to `FILE` (format from extension)",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level: debug, info, warn, error",
			EnvVars: []string{"CONFMERGE_LOG_LEVEL"},
			Value:   "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "log format: text, json",
			Value: logging.FormatText,
		},
	}
}

func merge(c *cli.Context, stdout, stderr io.Writer) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit("at least one configuration path is required", exitUsage)
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  c.String("log-level"),
		Format: c.String("log-format"),
	}, stderr)

	cfg, err := conf.New(conf.WithLogger(logger)).LoadPaths(paths...)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}

	if output := c.String("output"); output != "" {
		err = cfg.Save(output)
		if err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}

		return nil
	}

	data, err := jsonhandler.Encode(cfg.Root())
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}

	_, err = stdout.Write(data)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
