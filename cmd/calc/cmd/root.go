package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/console"
	"github.com/pengelbrecht/calc/internal/logging"
	"github.com/pengelbrecht/calc/internal/styles"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Four-function calculator and letter-grade converter",
	Long: `calc is a four-function calculator and letter-grade converter.

Run without a subcommand to start the interactive menu: pick an operation,
enter its numbers and calc prints one result before exiting.

Examples:
  calc                 # interactive menu
  calc divide 6 3      # one-shot division
  calc grade 88 58     # letter grades`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

var (
	cfgFile  string
	logLevel string
	noColor  bool

	logger   = slog.Default()
	renderer = styles.New(false)
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.calc.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: error, warn, info, debug")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// Execute runs the command tree against the process streams and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(errOut, renderer.Error("Error: "+err.Error()))
		return 1
	}
	return 0
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.GetLogLevel()
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		level = logLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logger = logging.New(cmd.ErrOrStderr(), lvl)
	renderer = styles.New(cfg.ColorEnabled() && !noColor)

	logger.Debug("configured", "command", cmd.Name(), "level", lvl.String(), "color", renderer.Enabled())
	return nil
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
		console.WithLogger(logger),
		console.WithStyles(renderer),
	)
	return session.Run()
}
