package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/89332874/ycsb-runner/config"
	"github.com/89332874/ycsb-runner/internal/output"
)

var version = "0.1.0"

const (
	// ConfigEnv names the runner config when --config is not given
	ConfigEnv = "YCSB_RUNNER_CONFIG"
	// EnvPathEnv overrides the location of the .env file
	EnvPathEnv = "ENV_PATH"

	defaultEnvPath = ".env"
)

// NewRootCmd creates the ycsb-runner command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ycsb-runner",
		Short:   "Inspect and validate YCSB runner configuration files",
		Version: version,
		Long: `ycsb-runner reads INI runner configuration files that declare which
database systems to benchmark with YCSB, the workload to run and the
concurrency (MPL) sweep for each of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is provided, print help
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Runner configuration file (default $"+ConfigEnv+")")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// Execute runs the root command and reports a failure on stderr.
// This is called by main.main().
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		output.NewDiagnostics(rootCmd.ErrOrStderr(), noColor).Error(err)
		return err
	}
	return nil
}

// loadDotEnv loads the .env file named by ENV_PATH, or ./.env when it
// exists. Variables already set in the environment win.
func loadDotEnv() error {
	path := os.Getenv(EnvPathEnv)
	explicit := path != ""
	if !explicit {
		path = defaultEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	return nil
}

// runContext holds what every subcommand needs to load a runner config.
type runContext struct {
	path    string
	noColor bool
	diag    *output.Diagnostics
	logger  *slog.Logger
}

func newRunContext(cmd *cobra.Command) (*runContext, error) {
	path, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return nil, fmt.Errorf("config file is required: use --config or set %s", ConfigEnv)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return &runContext{
		path:    path,
		noColor: noColor,
		diag:    output.NewDiagnostics(cmd.ErrOrStderr(), noColor),
		logger:  slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})),
	}, nil
}

// load reads the runner config, printing warnings as they are found.
func (rc *runContext) load() (*config.RunnerConfig, error) {
	return config.Load(rc.path,
		config.WithWarningHandler(rc.diag.Warn),
		config.WithLogger(rc.logger),
	)
}
