// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the tool settings file.
type StructuredJSONConfig struct {
	Fragments struct {
		Paths        []string `json:"paths,omitempty"`
		Strict       bool     `json:"strict,omitempty"`
		EnvPrefix    string   `json:"env_prefix,omitempty"`
		SkipDefaults bool     `json:"skip_defaults,omitempty"`
		SkipEnv      bool     `json:"skip_env,omitempty"`
	} `json:"fragments,omitempty"`

	Output struct {
		Format string `json:"format,omitempty"`
		Path   string `json:"path,omitempty"`
	} `json:"output,omitempty"`

	Watch struct {
		Enabled  bool     `json:"enabled,omitempty"`
		Debounce Duration `json:"debounce,omitempty"`
	} `json:"watch,omitempty"`

	Log struct {
		Level string `json:"level,omitempty"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Fragments: Fragments{
			Paths:        jsonCfg.Fragments.Paths,
			Strict:       jsonCfg.Fragments.Strict,
			EnvPrefix:    jsonCfg.Fragments.EnvPrefix,
			SkipDefaults: jsonCfg.Fragments.SkipDefaults,
			SkipEnv:      jsonCfg.Fragments.SkipEnv,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
			Path:   jsonCfg.Output.Path,
		},
		Watch: Watch{
			Enabled:  jsonCfg.Watch.Enabled,
			Debounce: time.Duration(jsonCfg.Watch.Debounce),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "200ms" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
