package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofilament/filament"
	"github.com/gofilament/filament/internal/config"

	// Register the built-in platforms.
	_ "github.com/gofilament/filament/backend/headless"
	_ "github.com/gofilament/filament/backend/noop"
)

var (
	cfg          *config.Config
	configPath   string
	flagBackend  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "fildemo",
	Short: "Drive the filament engine without a window",
	Long: "fildemo renders frames on a registered filament backend and reports\n" +
		"what the selected device can do. Without --backend it picks the best\n" +
		"platform available on this host.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagLogLevel != "" {
			cfg.Logger.Verbosity = flagLogLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		filament.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.LogLevel(),
		})))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Backend to run on (defaults to the best available)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log verbosity: debug, info, warn or error")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newInfoCmd())
}

// newEngine builds an engine from the effective configuration.
func newEngine() (*filament.Engine, error) {
	opts := []filament.Option{
		filament.WithFrameSize(cfg.Frame.Width, cfg.Frame.Height),
	}
	if cfg.Backend != "" {
		opts = append(opts, filament.WithBackend(cfg.Backend))
	}
	return filament.New(opts...)
}
