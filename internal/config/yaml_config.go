package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Settings that are nicer to keep in a file than in env vars.
type YAMLConfig struct {
	Sources SourcesConfig `yaml:"sources"`
	Site    SiteConfig    `yaml:"site"`
}

// SourcesConfig points at the upstream word and dictionary APIs.
type SourcesConfig struct {
	RandomWordURL string        `yaml:"random_word_url"`
	DictionaryURL string        `yaml:"dictionary_url"`
	Timeout       time.Duration `yaml:"timeout"` // e.g. "10s"
}

// SiteConfig holds branding text.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Footer  string `yaml:"footer"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// withDefaults fills unset fields with built-in values. Safe on nil.
func (c *YAMLConfig) withDefaults() *YAMLConfig {
	out := &YAMLConfig{}
	if c != nil {
		*out = *c
	}
	if out.Sources.RandomWordURL == "" {
		out.Sources.RandomWordURL = defaultRandomWordURL
	}
	if out.Sources.DictionaryURL == "" {
		out.Sources.DictionaryURL = defaultDictionaryURL
	}
	if out.Sources.Timeout <= 0 {
		out.Sources.Timeout = 10 * time.Second
	}
	if out.Site.Title == "" {
		out.Site.Title = "Word of the Moment"
	}
	if out.Site.Tagline == "" {
		out.Site.Tagline = "A random word and what it means"
	}
	if out.Site.Footer == "" {
		out.Site.Footer = "Definitions from dictionaryapi.dev"
	}
	return out
}
