// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

type RelayerConfig struct {
	Id                        string
	Env                       string
	LogLevel                  zerolog.Level
	LogFile                   string
	OpenTelemetryCollectorURL string
	ApiPort                   uint16
	HealthPort                uint16
	RedisConfig               RedisConfig
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type RawRelayerConfig struct {
	Id                        string         `mapstructure:"Id" json:"id"`
	Env                       string         `mapstructure:"Env" json:"env" default:"dev"`
	LogLevel                  string         `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string         `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	OpenTelemetryCollectorURL string         `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	ApiPort                   string         `mapstructure:"ApiPort" json:"apiPort" default:"8080"`
	HealthPort                string         `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	RedisConfig               RawRedisConfig `mapstructure:"RedisConfig" json:"redisConfig"`
}

type RawRedisConfig struct {
	Address  string `mapstructure:"Address" json:"address"`
	Password string `mapstructure:"Password" json:"password"`
	DB       string `mapstructure:"DB" json:"db" default:"0"`
}

func (c *RawRelayerConfig) Validate() error {
	return nil
}

// NewRelayerConfig parses RawRelayerConfig into RelayerConfig
func NewRelayerConfig(rawConfig RawRelayerConfig) (RelayerConfig, error) {
	config := RelayerConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	apiPort, err := strconv.ParseUint(rawConfig.ApiPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse api port: %w", err)
	}
	config.ApiPort = uint16(apiPort)

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	redisDB, err := strconv.Atoi(rawConfig.RedisConfig.DB)
	if err != nil {
		return config, fmt.Errorf("unable to parse redis db: %w", err)
	}

	config.Id = rawConfig.Id
	config.Env = rawConfig.Env
	config.LogFile = rawConfig.LogFile
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.RedisConfig = RedisConfig{
		Address:  rawConfig.RedisConfig.Address,
		Password: rawConfig.RedisConfig.Password,
		DB:       redisDB,
	}

	return config, nil
}
