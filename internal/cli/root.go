package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mvp-joe/project-atlas/internal/config"
	"github.com/mvp-joe/project-atlas/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Atlas - keeps a project's architecture document up to date",
	Long: `Atlas scans a project directory, extracts the structure of its Swift,
Python, JavaScript and HTML files, and writes a Markdown overview between
marker comments in ARCHITECTURE.md. Text outside the markers is kept as is.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <root>/.atlas/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// loadEnvFile loads root/.env, if present, so its ATLAS_* variables take
// part in configuration loading. Variables already set are not overridden.
func loadEnvFile(root string) error {
	err := godotenv.Load(filepath.Join(root, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// projectRoot returns the absolute project root named by args, or the
// working directory.
func projectRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to open project root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}
	return abs, nil
}

// loadConfig loads the configuration for root and applies the global flags.
func loadConfig(root string) (*config.Config, error) {
	if err := loadEnvFile(root); err != nil {
		return nil, err
	}

	var opts []config.LoaderOption
	if file := viper.GetString("config"); file != "" {
		opts = append(opts, config.WithConfigFile(file))
	}

	cfg, err := config.NewLoader(root, opts...).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if format := viper.GetString("log.format"); format != "" {
		cfg.Log.Format = format
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the stderr logger for one command run.
func newLogger(cfg *config.Config, command string) *logging.Logger {
	return logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr).WithCommand(command)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// mergeLists appends extra entries to base without modifying base.
func mergeLists(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
