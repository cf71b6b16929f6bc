package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdet/internal/config"
	"github.com/katalvlaran/lvdet/internal/logger"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	debug      bool
	logFile    string
}

func (g *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file")
	pf.BoolVar(&g.debug, "debug", false, "enable debug logging (needs --log-file or log.file)")
	pf.StringVar(&g.logFile, "log-file", "", "append JSON logs to FILE")
}

// load returns the file config (or defaults) with persistent flag overrides applied.
func (g *globalFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = g.debug
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = g.logFile
	}
	return cfg, nil
}

// setupLogger installs the process logger; with a file configured it must
// come up ready, and the resolved path is recorded in the log itself.
func setupLogger(cfg config.Config) (func(), error) {
	cleanup, err := logger.Setup(logger.Config{File: cfg.Log.File, Debug: cfg.Log.Debug})
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	if cfg.Log.File != "" {
		if err = logger.IsReady(); err != nil {
			_ = cleanup()
			return nil, fmt.Errorf("log file: %w", err)
		}
		logger.L().Debug("cli.logger", "path", logger.Path(), "since", logger.InitTime())
	}
	return func() { _ = cleanup() }, nil
}

// openInput resolves --input; empty or "-" means the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
