package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oskctl/oskctl/internal/branding"
	"github.com/oskctl/oskctl/internal/config"
	"github.com/oskctl/oskctl/internal/keyboard"
	"github.com/oskctl/oskctl/internal/notify"
	"github.com/oskctl/oskctl/internal/procs"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	debugFlag  bool
	configFlag string

	cfg config.Config
	ctl *keyboard.Controller
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [command]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` detects which on-screen keyboard program is installed
(wvkbd, squeekboard, onboard, or svkbd) and starts, stops, or inspects it.
Run without a command to toggle the keyboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = newLogger(debugFlag)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		path := configFlag
		if path == "" {
			path = os.Getenv(branding.EnvVar("CONFIG"))
		}
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err = config.Load(path)
		if err != nil {
			// check must stay machine-readable and exit 0 no matter
			// what; it never reads the settings, so a broken config
			// degrades to defaults instead of failing the poller.
			if cmd.Name() != checkCmd.Name() {
				return err
			}
			log.Debugw("ignoring config error for check", "error", err)
			cfg = config.Default()
		}

		ctl = keyboard.New(procs.NewTable(log), notify.NewSender(log), log)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			_ = cmd.Usage()
			return fmt.Errorf("unknown command %q", args[0])
		}
		// Bare invocation toggles, matching the desktop shell's button binding.
		return runToggle(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to keyboard.conf (default: "+filepath.Join("$XDG_CONFIG_HOME", branding.ConfigDir(), branding.ConfigFile())+")")
}

// newLogger builds the diagnostic logger: a development-style zap logger on
// stderr when debug is set, a no-op logger otherwise. Diagnostics stay off
// stdout because the check command's output is machine-read.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	if !debug {
		return zap.NewNop().Sugar(), nil
	}

	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
