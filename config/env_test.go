// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remitix/relayer/config/relayer"
)

type LoadFromEnvTestSuite struct {
	suite.Suite
}

func (s *LoadFromEnvTestSuite) TearDownTest() {
	os.Clearenv()
}

func TestRunLoadFromEnvTestSuite(t *testing.T) {
	suite.Run(t, new(LoadFromEnvTestSuite))
}

func (s *LoadFromEnvTestSuite) SetupTest() {
	os.Clearenv()
}

func (s *LoadFromEnvTestSuite) Test_ValidRelayerConfig() {
	_ = os.Setenv("RMX_RELAYER_ID", "relayer-1")
	_ = os.Setenv("RMX_RELAYER_ENV", "test")
	_ = os.Setenv("RMX_RELAYER_OPENTELEMETRYCOLLECTORURL", "test.opentelemetry.url")
	_ = os.Setenv("RMX_RELAYER_LOGLEVEL", "info")
	_ = os.Setenv("RMX_RELAYER_LOGFILE", "test.log")
	_ = os.Setenv("RMX_RELAYER_APIPORT", "4000")
	_ = os.Setenv("RMX_RELAYER_HEALTHPORT", "4001")
	_ = os.Setenv("RMX_RELAYER_REDISCONFIG_ADDRESS", "localhost:6379")
	_ = os.Setenv("RMX_RELAYER_REDISCONFIG_PASSWORD", "secret")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(relayer.RawRelayerConfig{
		Id:                        "relayer-1",
		Env:                       "test",
		OpenTelemetryCollectorURL: "test.opentelemetry.url",
		LogLevel:                  "info",
		LogFile:                   "test.log",
		ApiPort:                   "4000",
		HealthPort:                "4001",
		RedisConfig: relayer.RawRedisConfig{
			Address:  "localhost:6379",
			Password: "secret",
		},
	}, env.RelayerConfig)
}

func (s *LoadFromEnvTestSuite) Test_ValidChainConfig() {
	_ = os.Setenv("RMX_RELAYER_LOGLEVEL", "info")
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

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(map[string]interface{}{
		"endpoint":           "ws://evm1-1:8546",
		"chainId":            float64(1337),
		"feePayerKey":        "e8e0f5427111dee651e63a6f1029da6929ebf7d2d61cefaf166cebefdf2c012e",
		"stablecoin":         "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
		"vault":              "0x3cA3808176Ad060Ad80c4e08F30d85973Ef1d99e",
		"yield":              "0x75dF75bcdCa8eA2360c562b4aaDBAF3dfAf5b19b",
		"portfolio":          "0xe1588E2c6a002AE93AeD325A910Ed30961874109",
		"blockConfirmations": float64(2),
	}, env.ChainConfig)
}

func (s *LoadFromEnvTestSuite) Test_InvalidChainConfig() {
	_ = os.Setenv("RMX_RELAYER_LOGLEVEL", "info")
	_ = os.Setenv("RMX_CHAIN", "not-json")

	_, err := loadFromEnv()

	s.NotNil(err)
}
