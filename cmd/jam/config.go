// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const configEnv = "JAM_CONFIG"

type jamConfig struct {
	Salutation  string   `toml:"salutation,omitempty"`
	Punctuation string   `toml:"punctuation,omitempty"`
	Friends     []string `toml:"friends,omitempty"`
}

func defaultConfig() jamConfig {
	return jamConfig{Salutation: "Hello", Punctuation: "!"}
}

// loadConfig reads path over the defaults. A missing file is not an error
// when path came from the environment.
func loadConfig(path string, optional bool) (jamConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// items returns the settings as key/value pairs for column output.
func (c jamConfig) items() []string {
	friends := "none"
	if len(c.Friends) > 0 {
		friends = strings.Join(c.Friends, ", ")
	}
	return []string{
		"salutation", c.Salutation,
		"punctuation", c.Punctuation,
		"friends", friends,
	}
}
