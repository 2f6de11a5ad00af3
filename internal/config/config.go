// Package config holds the settings that can come from flags, the config
// file or the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"cpdiagram/internal/course"
	"cpdiagram/internal/diagram"
)

// EnvPrefix is the prefix of environment variables, e.g. CPD_DATA.
const EnvPrefix = "CPD"

// Keys shared with the command line flags.
const (
	KeyData        = "data"
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
	KeyExportScale = "export-scale"
)

type Config struct {
	DataDir     string  `mapstructure:"data"`
	LogFile     string  `mapstructure:"log-file"`
	LogLevel    string  `mapstructure:"log-level"`
	ExportScale float64 `mapstructure:"export-scale"`
	Defaults    Display `mapstructure:"defaults"`
}

// Display seeds the options form when the program starts.
type Display struct {
	Extended       string  `mapstructure:"extended"`
	ExtendLength   float64 `mapstructure:"extend-length"`
	Hidden         string  `mapstructure:"hidden"`
	HiddenNumbers  string  `mapstructure:"hidden-numbers"`
	NumberDistance float64 `mapstructure:"number-distance"`
	NumberSize     float64 `mapstructure:"number-size"`
	DPI            float64 `mapstructure:"dpi"`
	SaveDPI        float64 `mapstructure:"save-dpi"`
	AxisH          string  `mapstructure:"axis-h"`
	AxisV          string  `mapstructure:"axis-v"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	d := diagram.DefaultOptions()
	v.SetDefault(KeyData, "data")
	v.SetDefault(KeyLogFile, "cpdiagram.log")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyExportScale, 4.0)
	v.SetDefault("defaults.extended", "")
	v.SetDefault("defaults.extend-length", d.ExtendLength)
	v.SetDefault("defaults.hidden", "")
	v.SetDefault("defaults.hidden-numbers", "")
	v.SetDefault("defaults.number-distance", d.NumberDistance)
	v.SetDefault("defaults.number-size", d.NumberSize)
	v.SetDefault("defaults.dpi", d.DPI)
	v.SetDefault("defaults.save-dpi", d.SaveDPI)
	v.SetDefault("defaults.axis-h", string(d.AxisH))
	v.SetDefault("defaults.axis-v", string(d.AxisV))
}

// Load reads the effective configuration out of v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.ExportScale <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %v", KeyExportScale, c.ExportScale)
	}
	if _, err := c.Defaults.Options(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Options converts the configured defaults into diagram options.
func (d Display) Options() (diagram.Options, error) {
	o := diagram.DefaultOptions()
	var err error
	if o.Extended, err = course.ParseSet(d.Extended); err != nil {
		return o, fmt.Errorf("defaults.extended: %w", err)
	}
	if o.Hidden, err = course.ParseSet(d.Hidden); err != nil {
		return o, fmt.Errorf("defaults.hidden: %w", err)
	}
	if o.HiddenNumbers, err = course.ParseSet(d.HiddenNumbers); err != nil {
		return o, fmt.Errorf("defaults.hidden-numbers: %w", err)
	}
	if o.AxisH, err = diagram.ParseAxis(d.AxisH); err != nil {
		return o, fmt.Errorf("defaults.axis-h: %w", err)
	}
	if o.AxisV, err = diagram.ParseAxis(d.AxisV); err != nil {
		return o, fmt.Errorf("defaults.axis-v: %w", err)
	}
	o.ExtendLength = d.ExtendLength
	o.NumberDistance = d.NumberDistance
	o.NumberSize = d.NumberSize
	o.DPI = d.DPI
	o.SaveDPI = d.SaveDPI
	return o, nil
}
