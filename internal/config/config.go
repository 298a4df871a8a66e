package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		Seed
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Seed struct {
		Enabled bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8177)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("seed_sample_data", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Seed: Seed{
			Enabled: v.GetBool("SEED_SAMPLE_DATA"),
		},
	}
}
