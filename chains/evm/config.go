// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
)

type EVMConfig struct {
	Endpoint           string
	ChainID            int64
	FeePayerKey        string
	BlockConfirmations uint64
	Stablecoin         common.Address
	Vault              common.Address
	Yield              common.Address
	Portfolio          common.Address
}

type RawEVMConfig struct {
	Endpoint           string `mapstructure:"endpoint" json:"endpoint"`
	ChainID            int64  `mapstructure:"chainId" json:"chainId"`
	FeePayerKey        string `mapstructure:"feePayerKey" json:"feePayerKey"`
	BlockConfirmations uint64 `mapstructure:"blockConfirmations" json:"blockConfirmations" default:"1"`
	Stablecoin         string `mapstructure:"stablecoin" json:"stablecoin"`
	Vault              string `mapstructure:"vault" json:"vault"`
	Yield              string `mapstructure:"yield" json:"yield"`
	Portfolio          string `mapstructure:"portfolio" json:"portfolio"`
}

func (c *RawEVMConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty")
	}
	if c.ChainID == 0 {
		return fmt.Errorf("required field chain.ChainID empty")
	}
	if c.FeePayerKey == "" {
		return fmt.Errorf("required field chain.FeePayerKey empty")
	}
	if c.BlockConfirmations < 1 {
		return fmt.Errorf("blockConfirmations has to be >=1")
	}
	for name, address := range map[string]string{
		"chain.Stablecoin": c.Stablecoin,
		"chain.Vault":      c.Vault,
		"chain.Yield":      c.Yield,
		"chain.Portfolio":  c.Portfolio,
	} {
		if !common.IsHexAddress(address) {
			return fmt.Errorf("field %s is not a valid address: %s", name, address)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &EVMConfig{
		Endpoint:           c.Endpoint,
		ChainID:            c.ChainID,
		FeePayerKey:        c.FeePayerKey,
		BlockConfirmations: c.BlockConfirmations,
		Stablecoin:         common.HexToAddress(c.Stablecoin),
		Vault:              common.HexToAddress(c.Vault),
		Yield:              common.HexToAddress(c.Yield),
		Portfolio:          common.HexToAddress(c.Portfolio),
	}

	return config, nil
}
