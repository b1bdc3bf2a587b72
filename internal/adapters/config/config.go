package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Badsnus/qrstudio/internal/domain/dto"
	"github.com/Badsnus/qrstudio/pkg/logger"
)

type Config struct {
	Defaults dto.Defaults
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "logs")
	v.SetDefault("settings.timezone", "")

	d := dto.StandardDefaults
	v.SetDefault("defaults.qr-color", d.QRColor)
	v.SetDefault("defaults.bg-color", d.BackgroundColor)
	v.SetDefault("defaults.output", d.Output)
	v.SetDefault("defaults.transparency", d.Transparency)
	v.SetDefault("defaults.border", d.BorderSize)
	v.SetDefault("defaults.module-size", d.ModuleSize)
	v.SetDefault("defaults.border-modules", d.BorderModules)
	v.SetDefault("defaults.level", d.RecoveryLevel)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("QRSTUDIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}
}

// Load reads the tool defaults out of v.
func Load(v *viper.Viper) *Config {
	return &Config{
		Defaults: dto.Defaults{
			QRColor:         v.GetString("defaults.qr-color"),
			BackgroundColor: v.GetString("defaults.bg-color"),
			Output:          v.GetString("defaults.output"),
			Transparency:    v.GetFloat64("defaults.transparency"),
			BorderSize:      v.GetInt("defaults.border"),
			ModuleSize:      v.GetInt("defaults.module-size"),
			BorderModules:   v.GetInt("defaults.border-modules"),
			RecoveryLevel:   v.GetString("defaults.level"),
		},
	}
}

func Get() *Config {
	initConfig()

	var location *time.Location
	if tz := viper.GetString("settings.timezone"); tz != "" {
		var err error
		location, err = time.LoadLocation(tz)
		if err != nil {
			panic(err)
		}
	}

	err := logger.Init(logger.Config{
		Debug:        viper.GetBool("settings.debug"),
		TimeLocation: location,
		LogToFile:    viper.GetBool("settings.log-to-file"),
		LogsDir:      viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	cfg := Load(viper.GetViper())
	logger.Log.Debugf("Loaded config: %+v", cfg.Defaults)
	return cfg
}
