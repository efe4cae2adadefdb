// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/remitix/relayer/config/relayer"
)

type Config struct {
	RelayerConfig relayer.RelayerConfig
	ChainConfig   map[string]interface{}
}

type RawConfig struct {
	RelayerConfig relayer.RawRelayerConfig `mapstructure:"relayer" json:"relayer"`
	ChainConfig   map[string]interface{}   `mapstructure:"chain" json:"chain"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of RelayerConfig are expected to be defined as separate Env
// variables where Env variable name reflects properties position in
// structure. Each Env variable needs to be prefixed with RMX.
//
// For example, if you want to set Config.RelayerConfig.RedisConfig.Address
// this would translate to Env variable named RMX_RELAYER_REDISCONFIG_ADDRESS.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	relayerConfig, err := relayer.NewRelayerConfig(rawConfig.RelayerConfig)
	if err != nil {
		return config, err
	}

	chainConfig := rawConfig.ChainConfig
	if chainConfig == nil {
		chainConfig = map[string]interface{}{}
	}
	if len(config.ChainConfig) != 0 {
		err := mergo.Merge(&chainConfig, config.ChainConfig)
		if err != nil {
			return config, err
		}
	}
	if len(chainConfig) == 0 {
		return config, fmt.Errorf("chain configuration must be provided")
	}

	config.ChainConfig = chainConfig
	config.RelayerConfig = relayerConfig
	return config, nil
}
