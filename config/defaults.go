package config

import "github.com/awantoch/beemchart/constants"

// Default directories and file paths for beemchart.
const (
	// DefaultConfigDir is the base directory for beemchart artifacts.
	DefaultConfigDir = ".beemchart"
	// DefaultBlobDir is the default directory for filesystem blobs.
	DefaultBlobDir = DefaultConfigDir + "/charts"
	// DefaultConfigPath is the config file looked up when --config is not given.
	DefaultConfigPath = constants.ConfigFileName
)
