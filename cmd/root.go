package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/snapedit/internal/config"
	"github.com/zjrosen/snapedit/internal/log"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgErr    error // Reported by setupLogging so the command fails before running

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "snapedit",
	Short: "Run edit scripts against a snapshot-backed undo engine",
	Long: `snapedit applies copy, cut, paste, insert, delete, select and undo
operations to a text document. Every state-changing operation records a
snapshot so it can be undone.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/snapedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging (also SNAPEDIT_DEBUG=1)")
}

func initConfig() {
	cfg, cfgErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig resolves the config file into v and decodes it over the defaults.
// A missing config file is not an error. A file that cannot be parsed, or a
// value that does not decode into its field, is.
func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	defaults := config.Defaults()
	v.SetDefault("history.limit", defaults.History.Limit)
	v.SetDefault("clipboard.backend", defaults.Clipboard.Backend)
	v.SetDefault("snapshot.include_clipboard", defaults.Snapshot.IncludeClipboard)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_path", defaults.LogPath)
	v.SetDefault("log_level", defaults.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Config lookup order:
		// 1. .snapedit/config.yaml (current directory)
		// 2. ~/.config/snapedit/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "snapedit"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("%w: reading %s: %w", config.ErrInvalidConfig, v.ConfigFileUsed(), err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return defaults, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	return c, nil
}

func setupLogging(_ *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if !(debugFlag || cfg.Debug || os.Getenv("SNAPEDIT_DEBUG") != "") {
		return nil
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, "snapedit")
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup
	log.SetMinLevel(log.ParseLevel(cfg.LogLevel))

	log.Info(log.CatConfig, "snapedit starting", "debug", true, "logPath", logPath,
		"config", viper.ConfigFileUsed())
	return nil
}

func closeLog() {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// Execute runs the root command
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
