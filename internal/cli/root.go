// Package cli implements the contentkit command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/contentkit/config"
	"github.com/randalmurphal/contentkit/content"
	_ "github.com/randalmurphal/contentkit/kinds"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	errorIcon = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "contentkit",
		Short: "Turn generated text into platform-ready content",
		Long: `Contentkit parses free-form generated text into threads, newsletters,
polls and image prompts, and fits text to the character limits of
publishing platforms.

Input is read from a file argument or from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(NewParseCmd(&flags))
	rootCmd.AddCommand(NewFormatCmd(&flags))
	rootCmd.AddCommand(NewComposeCmd(&flags))
	rootCmd.AddCommand(NewMarkupCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(NewPlatformsCmd(&flags))
	rootCmd.AddCommand(NewWatchCmd(&flags))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contentkit %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		return err
	}
	return nil
}

// loadConfig reads the --config file, or returns the defaults.
func loadConfig(flags *globalFlags) (config.Config, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(flags.configPath)
}

// loadOptions resolves the content options for a command.
func loadOptions(flags *globalFlags) (content.Options, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return content.Options{}, err
	}
	return cfg.Options()
}

// setupLogging installs a text logger on stderr. The --log-level flag
// wins over the config file.
func setupLogging(w io.Writer, flags globalFlags) error {
	level := slog.LevelWarn
	if flags.configPath != "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		level = cfg.Level()
	}
	if flags.logLevel != "" {
		l, err := config.ParseLevel(flags.logLevel)
		if err != nil {
			return err
		}
		level = l
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}
