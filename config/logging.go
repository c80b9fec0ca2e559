package config

import (
	"encoding/json"
	"fmt"
	"github.com/tidwall/gjson"
)

type LoggingConfig struct {
	Name   string
	Type   string
	Config any
}

func (g *LoggingConfig) UnmarshalJSON(data []byte) error {
	if result := gjson.GetBytes(data, "Type"); !result.Exists() {
		return fmt.Errorf("failed to find logging type information")
	} else {
		g.Type = result.String()
	}

	if result := gjson.GetBytes(data, "Name"); result.Exists() {
		g.Name = result.String()
	}

	switch g.Type {
	case "stdout":
		g.Config = &StdoutLogging{}
	case "file":
		g.Config = &FileLogging{}
	default:
		return fmt.Errorf("unknown logging configuration type: %s", g.Type)
	}

	if result := gjson.GetBytes(data, "Config"); result.Exists() {
		return json.Unmarshal([]byte(result.Raw), g.Config)
	} else {
		return fmt.Errorf("unable to find Config stanza: %s", g.Type)
	}
}

// ParseLoggingConfigs parses a JSON array of logging configurations, unnamed entries are named after their position.
func ParseLoggingConfigs(data string) ([]LoggingConfig, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if !gjson.Valid(data) {
		return nil, fmt.Errorf("logging configuration is not valid json")
	}

	parsed := gjson.Parse(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("logging configuration must be an array")
	}

	var cfgs []LoggingConfig
	var parseErr error

	i := 0

	parsed.ForEach(func(_, value gjson.Result) bool {
		n := i
		i++

		cfg := LoggingConfig{}

		if err := json.Unmarshal([]byte(value.Raw), &cfg); err != nil {
			parseErr = fmt.Errorf("failed to parse logging configuration %d: %w", n, err)
			return false
		}

		if len(cfg.Name) == 0 {
			cfg.Name = fmt.Sprintf("%s-%d", cfg.Type, n)
		}

		cfgs = append(cfgs, cfg)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return cfgs, nil
}

type BaseLogging struct {
	Level string

	NegateSubsystems bool
	Subsystems       []string
}

type StdoutLogging struct {
	BaseLogging
}

type FileLogging struct {
	BaseLogging

	Filename string
	Size     int
	Count    int
	Compress bool
}
