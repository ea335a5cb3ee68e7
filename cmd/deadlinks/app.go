package main

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"deadlinks/audit"
	"deadlinks/internal/config"
)

const (
	exitBroken = 1
	exitFatal  = 2
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "deadlinks",
		Usage:     "find relative links that point nowhere in a tree of HTML files",
		ArgsUsage: "[directory...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   "directory where non-HTML link targets are looked up (default: current directory)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with roots, base, format and workers",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text or json (default: text)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of files parsed concurrently (default: 4)",
			},
			&cli.BoolFlag{
				Name:  "indent",
				Value: true,
				Usage: "indent JSON output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "log only errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug details",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, stdout, stderr)
		},
	}
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	logger := newLogger(c, stderr)

	cfg, err := loadConfig(c)
	if err != nil {
		return fatal(err)
	}
	logger.Debug("configuration", "roots", cfg.Roots, "base", cfg.Base, "format", cfg.Format, "workers", cfg.Workers)

	result, err := audit.Audit(c.Context, audit.Options{
		Roots:   cfg.Roots,
		Base:    cfg.Base,
		Workers: cfg.Workers,
		Logger:  logger,
	})
	if err != nil {
		return fatal(err)
	}

	if cfg.Format == config.FormatJSON {
		data, err := result.Encode(c.Bool("indent"))
		if err != nil {
			return fatal(err)
		}
		if _, err := stdout.Write(append(data, '\n')); err != nil {
			return fatal(err)
		}
	} else if err := result.WriteText(stdout); err != nil {
		return fatal(err)
	}

	if !result.Clean() {
		return cli.Exit("", exitBroken)
	}
	return nil
}

// fatal оборачивает ошибку в код выхода 2 с тем же префиксом, что и в main
func fatal(err error) error {
	return cli.Exit("Error: "+err.Error(), exitFatal)
}

// loadConfig объединяет файл конфигурации и флаги; флаги важнее
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Args().Present() {
		cfg.Roots = c.Args().Slice()
	}
	if c.IsSet("base") {
		cfg.Base = c.String("base")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}

	if err := cfg.Defaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(c *cli.Context, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		level = slog.LevelError
	case c.Bool("verbose"):
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
