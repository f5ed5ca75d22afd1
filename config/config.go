package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/awantoch/beemchart/constants"
)

type Config struct {
	Output  OutputConfig   `json:"output"`
	Blob    BlobConfig     `json:"blob"`
	HTTP    HTTPConfig     `json:"http"`
	Log     LogConfig      `json:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty"`
}

// OutputConfig controls where save/html write files when given a bare name.
type OutputConfig struct {
	Dir string `json:"dir"`
}

type BlobConfig struct {
	Driver    string `json:"driver"`
	Directory string `json:"directory,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	Region    string `json:"region,omitempty"`
}

type HTTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type TracingConfig struct {
	Exporter    string `json:"exporter"`
	Endpoint    string `json:"endpoint,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

// LoadConfig reads a JSON config file. Missing sections stay zero-valued.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads path if it exists, then applies environment overrides and
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv(constants.EnvBlobDriver); v != "" {
		c.Blob.Driver = v
	}
	if v := os.Getenv(constants.EnvHTTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.HTTP.Port = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Blob.Driver == "" {
		c.Blob.Driver = constants.BlobDriverFilesystem
	}
	if c.Blob.Driver == constants.BlobDriverFilesystem && c.Blob.Directory == "" {
		c.Blob.Directory = DefaultBlobDir
	}
	if c.HTTP.Host == "" {
		c.HTTP.Host = constants.DefaultHTTPHost
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = constants.DefaultHTTPPort
	}
}
