package main

import (
	"os"

	"github.com/siherrmann/thinkermap/helper"
	"github.com/siherrmann/thinkermap/model"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file overlaying the engine defaults, e.g.
//
//	analysis:
//	  top_k: 10
//	map:
//	  max_depth: 3
//	  visible_types: [influenced, critiqued]
type Config struct {
	Analysis model.AnalysisConfig `yaml:"analysis"`
	Map      model.MapConfig      `yaml:"map"`
}

// loadConfig returns the defaults, overlaid by the YAML file at path if path is not empty.
// Keys missing in the file keep their default value.
func loadConfig(path string) (*Config, error) {
	config := &Config{
		Analysis: model.DefaultAnalysisConfig(),
		Map:      model.DefaultMapConfig(),
	}
	if path == "" {
		return config, nil
	}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, helper.NewError("read config", err)
	}

	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, helper.NewError("parse config", err)
	}

	for _, t := range config.Map.VisibleTypes {
		if _, err := model.ParseConnectionType(string(t)); err != nil {
			return nil, helper.NewError("parse config", err)
		}
	}

	return config, nil
}
