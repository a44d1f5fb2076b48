package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the variance flags in a YAML file.
// Unknown keys are rejected so typos fail loudly.
type FileConfig struct {
	Count    *int   `yaml:"count"`
	Dir      string `yaml:"dir"`
	Template string `yaml:"template"`
	Sort     string `yaml:"sort"`
	Format   string `yaml:"format"`
	Log      string `yaml:"log"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfigFile copies values from the YAML file into the flag variables,
// skipping any flag the user set explicitly.
func applyConfigFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}
	cfg, err := loadFileConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Count != nil && !flags.Changed("count") {
		fileCount = *cfg.Count
	}
	setString := func(flag, value string, dst *string) {
		if value != "" && !flags.Changed(flag) {
			*dst = value
		}
	}
	setString("dir", cfg.Dir, &samplesDir)
	setString("template", cfg.Template, &fileTemplate)
	setString("sort", cfg.Sort, &sortOrder)
	setString("format", cfg.Format, &reportFormat)
	setString("log", cfg.Log, &logLevel)
	return nil
}
