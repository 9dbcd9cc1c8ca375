package cli

import (
	"fmt"

	"github.com/existflow/tasktracker/internal/client"
	"github.com/existflow/tasktracker/internal/config"
	"github.com/existflow/tasktracker/internal/logger"
	"github.com/existflow/tasktracker/internal/tui"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	configPath string
	serverURL  string
	logLevel   string
	logFile    string
	logConsole bool

	cfg    *config.Config
	client *client.Client
}

// NewRootCmd builds the tasktracker command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tasktracker",
		Short: "TaskTracker - track tasks against a task server",
		Long: `TaskTracker is a terminal client for the task tracker HTTP API.

Run 'tasktracker' without arguments to launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("Launching TUI", logger.F("server", a.client.BaseURL()))
			if err := tui.Run(a.client); err != nil {
				logger.Error("TUI error", logger.F("error", err))
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			logger.Info("TUI exited normally")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Info("TaskTracker exiting", logger.F("command", cmd.Name()))
			_ = logger.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.serverURL, "server", "", "Task server URL (overrides config)")
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default ~/.tasktracker/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&a.logFile, "log-file", "", "Path to log file")
	flags.BoolVar(&a.logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newRestoreCmd(a),
		newServerCmd(a),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	// Flags win over the file and environment
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if cmd.Flags().Changed("server") {
		cfg.ServerURL = a.serverURL
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.ParseLevel(cfg.LogLevel)
	logConfig.FilePath = cfg.LogFile
	logConfig.Format = cfg.LogFormat
	// stderr output would corrupt the TUI and command output
	logConfig.Console = a.logConsole

	if err := logger.Init(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.client = client.New(cfg.ServerURL)

	logger.Info("TaskTracker started",
		logger.F("command", cmd.Name()),
		logger.F("server", cfg.ServerURL))
	return nil
}
