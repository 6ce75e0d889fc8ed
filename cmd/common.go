package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rook-computer/postermaker/internal/config"
	"github.com/rook-computer/postermaker/internal/logging"
	"github.com/rook-computer/postermaker/internal/poster"
	"github.com/spf13/cobra"
)

// posterInput holds the flags shared by every command that renders a poster.
type posterInput struct {
	title    string
	body     string
	bodyFile string
	theme    string
	qr       bool
}

func (in *posterInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.title, "title", "t", "", "poster title")
	cmd.Flags().StringVarP(&in.body, "body", "b", "", "poster body text")
	cmd.Flags().StringVarP(&in.bodyFile, "body-file", "f", "", "read the body text from a file ('-' for stdin)")
	cmd.Flags().StringVarP(&in.theme, "theme", "", "modern", "theme name (modern, sunset, forest, midnight)")
	cmd.Flags().BoolVarP(&in.qr, "qr", "", false, "draw a QR code of the footer text")
}

func (in *posterInput) request(cmd *cobra.Command) (poster.Request, error) {
	body := in.body
	if in.bodyFile != "" {
		var (
			b   []byte
			err error
		)
		if in.bodyFile == "-" {
			b, err = io.ReadAll(cmd.InOrStdin())
		} else {
			b, err = os.ReadFile(in.bodyFile)
		}
		if err != nil {
			return poster.Request{}, fmt.Errorf("read body: %w", err)
		}
		body = string(b)
	}
	return poster.Request{Title: in.title, Body: body, Theme: in.theme}, nil
}

// composer builds the composer described by the loaded config; an explicit
// --qr flag wins over the config.
func (in *posterInput) composer(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) *poster.Composer {
	c := newComposer(cfg, logger)
	if cmd.Flags().Changed("qr") {
		c = c.WithQR(in.qr)
	}
	return c
}

// loadConfig reads --config, or the profile config, then applies the environment.
func loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
		path = configFile
	} else {
		cfg, path, err = config.Load(profile)
	}
	if err != nil {
		return nil, "", err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// newLogger returns the process logger and a func that closes the log file.
func newLogger() (*slog.Logger, func(), error) {
	opts := logging.Options{Debug: debug}
	closer := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		opts.File = f
		closer = func() { _ = f.Close() }
	}
	return logging.New(opts), closer, nil
}

func newComposer(cfg *config.Config, logger *slog.Logger) *poster.Composer {
	opts := []poster.Option{
		poster.WithLogger(logging.Component(logger, "poster")),
		poster.WithFonts(cfg.Fonts),
		poster.WithFooterQR(cfg.FooterQR),
	}
	if cfg.Subtitle != "" {
		opts = append(opts, poster.WithSubtitle(cfg.Subtitle))
	}
	if cfg.Footer != "" {
		opts = append(opts, poster.WithFooterText(cfg.Footer))
	}
	return poster.New(opts...)
}

// setup loads config and logger for a command.
func setup() (*config.Config, string, *slog.Logger, func(), error) {
	logger, closer, err := newLogger()
	if err != nil {
		return nil, "", nil, nil, err
	}
	cfg, path, err := loadConfig()
	if err != nil {
		closer()
		return nil, "", nil, nil, err
	}
	if path != "" {
		logger.Debug("config loaded", slog.String("path", path))
	}
	return cfg, path, logger, closer, nil
}
