package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cpdiagram/internal/config"
	"cpdiagram/internal/logging"
	"cpdiagram/internal/tui"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile, courseCode string

	cmd := &cobra.Command{
		Use:          "cpdiagram",
		Short:        "Terminal viewer for F-Zero GX checkpoint diagrams",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, cfgFile)
		},
		RunE: func(*cobra.Command, []string) error {
			return run(v, courseCode)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cpdiagram.yml)")
	f.String(config.KeyData, "data", "directory with the course tables")
	f.String(config.KeyLogFile, "cpdiagram.log", "log file, empty to disable logging")
	f.String(config.KeyLogLevel, "info", "log level (trace, debug, info, warn, error)")
	f.Float64(config.KeyExportScale, 4, "image pixels per canvas dot when saving a PNG")
	f.StringVar(&courseCode, "course", "", "course to open at start, e.g. MCTR")
	return cmd
}

// initConfig reads the config file and environment into v.
func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	config.SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".cpdiagram")
	}

	// CPD_LOG_LEVEL, CPD_DEFAULTS_EXTEND_LENGTH
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return bindFlags(cmd, v)
}

// bindFlags lets changed flags override the config file and environment.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case "config", "course", "help":
			return
		}
		if bindErr := v.BindPFlag(f.Name, f); bindErr != nil && err == nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

func run(v *viper.Viper, courseCode string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	log := logging.For("main")
	log.Info().
		Str("data", cfg.DataDir).
		Str("config", v.ConfigFileUsed()).
		Float64("exportScale", cfg.ExportScale).
		Msg("starting")

	var m tea.Model
	if courseCode != "" {
		if m, err = tui.NewWithCourse(cfg, courseCode); err != nil {
			return err
		}
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error().Err(err).Msg("ui stopped")
		return err
	}
	log.Info().Msg("bye")
	return nil
}
