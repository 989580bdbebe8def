package main

import (
	"context"
	"fmt"
	"time"

	"photopick/internal/config"
	"photopick/internal/library"
	"photopick/internal/loader"
	"photopick/internal/logger"
	"photopick/internal/picker"
	"photopick/internal/progress"
	"photopick/internal/trace"
	"photopick/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// eventBuffer bounds queued worker events; extras are dropped, not blocked on.
const eventBuffer = 16

// runFunc starts the program for a resolved config.
type runFunc func(ctx context.Context, cfg *config.Config) error

func newRootCmd() *cobra.Command {
	return newRootCmdWith(viper.New(), run)
}

func newRootCmdWith(v *viper.Viper, runner runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photopick [library-dir]",
		Short: "Pick a photo from a library directory and view it in the terminal",
		Long: "photopick lists the photos in a directory, lets you pick one, decodes it\n" +
			"in the background and draws it scaled to fit the terminal.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("library", args[0])
			}
			cfg, err := config.Load(v, v.GetString("config_file"), v.GetString("env_file"))
			if err != nil {
				return err
			}
			return runner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("library", "", "photo library directory (default ~/Pictures)")
	flags.Bool("recursive", false, "include photos in subdirectories")
	flags.Int("workers", 0, "number of decode workers")
	flags.Bool("cancel-superseded", false, "cancel a load when a newer pick replaces it")
	flags.String("log-file", "", "log file path")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("environment", "", "environment: development, prod or test")
	flags.String("otlp-endpoint", "", "OTLP/HTTP endpoint for load traces")
	flags.String("config-file", "", "path to a YAML config file")
	flags.String("env-file", "", "path to a .env file")

	for key, flag := range map[string]string{
		"library":           "library",
		"recursive":         "recursive",
		"workers":           "workers",
		"cancel_superseded": "cancel-superseded",
		"log_file":          "log-file",
		"log_level":         "log-level",
		"environment":       "environment",
		"otlp_endpoint":     "otlp-endpoint",
		"config_file":       "config-file",
		"env_file":          "env-file",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tracer, err := trace.NewOTLPExporter(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		log.Warn("tracing disabled", zap.Error(err))
		tracer = trace.Noop()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Warn("trace shutdown", zap.Error(err))
		}
	}()

	lib, err := library.New(cfg.LibraryDir, cfg.Recursive)
	if err != nil {
		return err
	}

	events := make(chan progress.Event, eventBuffer)
	fl := loader.NewFileLoader(cfg.Workers,
		loader.WithLogger(log.Named("loader")),
		loader.WithEvents(&progress.ChanEmitter{Ch: events}),
	)
	defer fl.Close()

	p := picker.New(fl,
		picker.WithLogger(log.Named("picker")),
		picker.WithTracer(tracer),
		picker.WithCancelSuperseded(cfg.CancelSuperseded),
	)

	log.Info("starting",
		zap.String("library", lib.Root()),
		zap.Int("workers", cfg.Workers),
		zap.Bool("cancel_superseded", cfg.CancelSuperseded),
		zap.Bool("tracing", tracer.Enabled()))

	model := ui.NewAppModel(ui.Deps{
		Picker:  p,
		Library: lib,
		Events:  events,
		Log:     log.Named("ui"),
	}).AsTeaModel()

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
