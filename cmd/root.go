package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/murmur/internal/app"
	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/config"
	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/seed"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	variantFlag           string
	deliveryFlag          string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "murmur",
	Short: "Terminal messenger with mock data",
	Long: `murmur is a terminal messenger that runs entirely on local mock data.
The admin variant ships an admin panel over an empty chat list; the social
variant ships sample chats, stories and call buttons.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings and errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.murmur/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "Messenger variant: admin or social")
	rootCmd.PersistentFlags().StringVar(&deliveryFlag, "delivery", "", "What sending does: discard or local-echo")
}

func initConfig() {
	switch {
	case quietMode:
		logger.SetLevel(logger.LevelWarn)
	case debugMode:
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("murmur %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("murmur %s\n", version)
}

// loadSession resolves the config, dataset and verifier the TUI runs on.
func loadSession() (*config.Config, seed.Dataset, *auth.StaticVerifier, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, seed.Dataset{}, nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.ApplyOverrides(variantFlag, deliveryFlag); err != nil {
		return nil, seed.Dataset{}, nil, err
	}

	var ds seed.Dataset
	if path := cfg.GetSeedPath(); path != "" {
		ds, err = seed.LoadFile(path)
	} else {
		ds, err = seed.Load(cfg.GetVariant())
	}
	if err != nil {
		return nil, seed.Dataset{}, nil, fmt.Errorf("error loading seed data: %w", err)
	}

	verifier, err := auth.NewStaticVerifier(cfg.AdminCredentials())
	if err != nil {
		return nil, seed.Dataset{}, nil, fmt.Errorf("error configuring admin login: %w", err)
	}
	return cfg, ds, verifier, nil
}

// withStartupHint appends a pointer to the setting most likely at fault.
func withStartupHint(err error) error {
	switch errors.GetKind(err) {
	case errors.KindConfig, errors.KindInvalid:
		return fmt.Errorf("%w\nhint: check the config file and the --variant/--delivery flags", err)
	case errors.KindAuth:
		return fmt.Errorf("%w\nhint: check the admin section of the config file", err)
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, ds, verifier, err := loadSession()
	if err != nil {
		logger.Error("startup failed (%s): %v", errors.GetKind(err), err)
		return withStartupHint(err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	logger.Info("starting murmur %s (variant=%s, delivery=%s)", version, cfg.GetVariant(), cfg.GetDelivery())

	// Create and run the app
	m := app.New(cfg, ds, verifier, nil)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
