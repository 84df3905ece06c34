package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dxcli/dx/pkg/cliconfig"
	"github.com/dxcli/dx/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	logLevel   string
	logFormat  string
	logFile    string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"

	// cfg is the merged file/env configuration, loaded before any RunE.
	cfg *cliconfig.Config
	// logger is shared by all commands.
	logger = logging.Nop()
	// closeLog releases the log file, if one was opened.
	closeLog = func() error { return nil }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dx",
	Short: "dx is a deterministic fake-data toolbox",
	Long: `dx generates fake data from templates and expressions using a single
seedable random stream, so the same seed always produces the same output.

Configuration can be provided via flags, environment variables (DX_*), a
local .dxrc.yaml, or ~/.config/dx/config.yaml.`,
	// No Run function here means 'dx' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = cliconfig.LoadAll()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			cfg.Sources["logLevel"] = cliconfig.SourceFlag
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
			cfg.Sources["logFormat"] = cliconfig.SourceFlag
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			cfg.Sources["logFile"] = cliconfig.SourceFlag
		}
		if cmd.Flags().Changed("json") {
			cfg.JSON = jsonOutput
			cfg.Sources["json"] = cliconfig.SourceFlag
		}
		jsonOutput = cfg.JSON

		logger, closeLog, err = logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Format: logging.ParseFormat(cfg.LogFormat),
			File:   cfg.LogFile,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Logger returns the logger configured by the persistent flags.
func Logger() *slog.Logger { return logger }

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs (as JSON) to this file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
