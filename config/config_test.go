// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remitix/relayer/config"
	"github.com/remitix/relayer/config/relayer"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("RMX_CHAIN", `{
      "endpoint": "ws://evm1-1:8546",
      "chainId": 1337,
      "feePayerKey": "e8e0f5427111dee651e63a6f1029da6929ebf7d2d61cefaf166cebefdf2c012e",
      "stablecoin": "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
      "vault": "0x3cA3808176Ad060Ad80c4e08F30d85973Ef1d99e",
      "yield": "0x75dF75bcdCa8eA2360c562b4aaDBAF3dfAf5b19b",
      "portfolio": "0xe1588E2c6a002AE93AeD325A910Ed30961874109",
      "blockConfirmations": 2
   }`)

	_ = os.Setenv("RMX_RELAYER_ID", "123")
	_ = os.Setenv("RMX_RELAYER_ENV", "TEST")
	_ = os.Setenv("RMX_RELAYER_APIPORT", "8085")
	_ = os.Setenv("RMX_RELAYER_REDISCONFIG_ADDRESS", "localhost:6379")

	// load from Env
	cnf, err := config.GetConfigFromENV(&config.Config{})

	s.Nil(err)

	s.Equal(config.Config{
		RelayerConfig: relayer.RelayerConfig{
			LogLevel:   1,
			LogFile:    "out.log",
			Env:        "TEST",
			Id:         "123",
			ApiPort:    8085,
			HealthPort: 9001,
			RedisConfig: relayer.RedisConfig{
				Address: "localhost:6379",
			},
		},
		ChainConfig: map[string]interface{}{
			"endpoint":           "ws://evm1-1:8546",
			"chainId":            float64(1337),
			"feePayerKey":        "e8e0f5427111dee651e63a6f1029da6929ebf7d2d61cefaf166cebefdf2c012e",
			"stablecoin":         "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
			"vault":              "0x3cA3808176Ad060Ad80c4e08F30d85973Ef1d99e",
			"yield":              "0x75dF75bcdCa8eA2360c562b4aaDBAF3dfAf5b19b",
			"portfolio":          "0xe1588E2c6a002AE93AeD325A910Ed30961874109",
			"blockConfirmations": float64(2),
		},
	}, *cnf)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV_MissingChainConfig() {
	_ = os.Setenv("RMX_RELAYER_ID", "123")

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
	s.ErrorContains(err, "chain configuration must be provided")
}

type ConfigTestCase struct {
	name       string
	inConfig   config.RawConfig
	shouldFail bool
	errorMsg   string
	outConfig  config.Config
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile() {
	testCases := []ConfigTestCase{
		{
			name: "invalid log level",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					LogLevel: "invalid",
				},
				ChainConfig: map[string]interface{}{
					"endpoint": "ws://evm1-1:8546",
				},
			},
			shouldFail: true,
			errorMsg:   "unknown log level: invalid",
			outConfig:  config.Config{},
		},
		{
			name: "invalid api port",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					ApiPort: "not-a-port",
				},
				ChainConfig: map[string]interface{}{
					"endpoint": "ws://evm1-1:8546",
				},
			},
			shouldFail: true,
			errorMsg:   "unable to parse api port",
			outConfig:  config.Config{},
		},
		{
			name: "missing chain config",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					Id: "relayer-1",
				},
			},
			shouldFail: true,
			errorMsg:   "chain configuration must be provided",
			outConfig:  config.Config{},
		},
		{
			name: "set default values in config",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					Id: "relayer-1",
				},
				ChainConfig: map[string]interface{}{
					"endpoint": "ws://evm1-1:8546",
					"chainId":  float64(1337),
				},
			},
			shouldFail: false,
			outConfig: config.Config{
				RelayerConfig: relayer.RelayerConfig{
					Id:         "relayer-1",
					Env:        "dev",
					LogLevel:   1,
					LogFile:    "out.log",
					ApiPort:    8080,
					HealthPort: 9001,
				},
				ChainConfig: map[string]interface{}{
					"endpoint": "ws://evm1-1:8546",
					"chainId":  float64(1337),
				},
			},
		},
	}

	for _, t := range testCases {
		s.Run(t.name, func() {
			file, _ := json.Marshal(t.inConfig)
			_ = os.WriteFile("test.json", file, 0o644)

			conf, err := config.GetConfigFromFile("test.json", &config.Config{})

			_ = os.Remove("test.json")

			if t.shouldFail {
				s.NotNil(err)
				s.ErrorContains(err, t.errorMsg)
			} else {
				s.Nil(err)
				s.Equal(t.outConfig, *conf)
			}
		})
	}
}
