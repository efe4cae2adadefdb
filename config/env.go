// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"rmx"`
}

const EnvPrefix = "RMX"

func loadFromEnv() (RawConfig, error) {
	jsonConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonConfig, c)
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// the chain section is passed as one JSON blob
	rawChainConfig := os.Getenv(EnvPrefix + "_CHAIN")
	if rawChainConfig != "" {
		var cc map[string]interface{}
		err = json.Unmarshal([]byte(rawChainConfig), &cc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.ChainConfig = cc
	}

	return rawConfig, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.Contains(e, EnvPrefix) {
			pair := strings.SplitN(e, "=", 2)
			if pair[0] == EnvPrefix+"_CHAIN" {
				continue
			}
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return json.MarshalIndent(structure, "", "    ")
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
