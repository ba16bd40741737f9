package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/unoproservices/unopro"
	"github.com/unoproservices/unopro/logging"
)

// fileConfig is the on-disk and environment configuration.
type fileConfig struct {
	Site unopro.SiteConfig `mapstructure:",squash"`
	Log  logConfig         `mapstructure:"log"`
}

type logConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

func (l logConfig) options() logging.Options {
	return logging.Options{Level: l.Level, Format: l.Format, File: l.File}
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "Uno Pro Services")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("static_dir", "public")
	v.SetDefault("site_info_url", "")
	v.SetDefault("blog.layout", "combined")
	v.SetDefault("blog.index_url", "")
	v.SetDefault("blog.post_url", "")
	v.SetDefault("blog.cache_ttl", "0s")
	v.SetDefault("webhooks.contact", unopro.DefaultContactWebhook)
	v.SetDefault("webhooks.careers", unopro.DefaultCareersWebhook)
	v.SetDefault("http.fetch_timeout", "10s")
	v.SetDefault("http.webhook_timeout", "30s")
	v.SetDefault("submissions.max", 5)
	v.SetDefault("submissions.window", "10m")
	v.SetDefault("session_secret", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
}

// loadConfig reads .env, the config file and UNOPRO_* variables. A missing
// config file is only an error when one was named explicitly.
func loadConfig(cfgFile string) (fileConfig, error) {
	var cfg fileConfig
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("UNOPRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
