package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "RESOURCE_API"

// config is the resolved process configuration.
type config struct {
	Port     string
	LogLevel string
	LogFmt   string

	DBPath       string
	MaxOpenConns int

	Realm        string
	DefaultLimit int
	MaxLimit     int

	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("db.max_open_conns", 1)
	v.SetDefault("auth.realm", "resource-api")
	v.SetDefault("api.default_limit", 100)
	v.SetDefault("api.max_limit", 1000)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// loadConfig reads configs/config.yml (or the file given by path) plus RESOURCE_API_* env overrides.
// A missing config file is not an error; defaults apply.
func loadConfig(v *viper.Viper, path string) (config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, err
		}
	}

	return config{
		Port:              v.GetString("port"),
		LogLevel:          v.GetString("log.level"),
		LogFmt:            v.GetString("log.format"),
		DBPath:            v.GetString("db.path"),
		MaxOpenConns:      v.GetInt("db.max_open_conns"),
		Realm:             v.GetString("auth.realm"),
		DefaultLimit:      v.GetInt("api.default_limit"),
		MaxLimit:          v.GetInt("api.max_limit"),
		ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
		WriteTimeout:      v.GetDuration("server.write_timeout"),
		IdleTimeout:       v.GetDuration("server.idle_timeout"),
		ShutdownTimeout:   v.GetDuration("server.shutdown_timeout"),
	}, nil
}
