package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
		DSN     string `json:"dsn"`
		Redis   struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Prefix   string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SessionCheckInterval Duration `json:"session_check_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	MockAPI struct {
		Address       string   `json:"address"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"mockapi,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Path:    jsonCfg.Storage.Path,
			DSN:     jsonCfg.Storage.DSN,
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				Prefix:   jsonCfg.Storage.Redis.Prefix,
			},
		},
		Workers: Workers{
			SessionCheckInterval: time.Duration(jsonCfg.Workers.SessionCheckInterval),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		MockAPI: MockAPI{
			Address:       jsonCfg.MockAPI.Address,
			TokenSignKey:  jsonCfg.MockAPI.TokenSignKey,
			TokenIssuer:   jsonCfg.MockAPI.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.MockAPI.TokenDuration),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
