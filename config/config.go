package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	GinMode     string
	HTTPTimeout int32

	KachelmannAPIKey  string
	KachelmannBaseURL string
	KachelmannUnits   string

	Latitude       float64
	Longitude      float64
	HasCoordinates bool
}

func LoadConfig() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("SERVICE_NAME", "kachelmann-weather")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("KACHELMANN_BASE_URL", "https://api.kachelmannwetter.com/v02/")
	v.SetDefault("KACHELMANN_UNITS", "metric")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		ServerAddress:     v.GetString("SERVER_ADDRESS"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		GinMode:           v.GetString("GIN_MODE"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		KachelmannAPIKey:  v.GetString("KACHELMANN_API_KEY"),
		KachelmannBaseURL: v.GetString("KACHELMANN_BASE_URL"),
		KachelmannUnits:   v.GetString("KACHELMANN_UNITS"),
	}

	// Coordinates are only used when both are present.
	if v.IsSet("KACHELMANN_LATITUDE") && v.IsSet("KACHELMANN_LONGITUDE") {
		config.Latitude = v.GetFloat64("KACHELMANN_LATITUDE")
		config.Longitude = v.GetFloat64("KACHELMANN_LONGITUDE")
		config.HasCoordinates = true
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
