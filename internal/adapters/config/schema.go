package config

// SettingsFile represents the structure of config.yaml. Absent keys keep their defaults.
type SettingsFile struct {
	Tick      string `yaml:"tick"`
	Anchor    string `yaml:"anchor"`
	Startup   string `yaml:"startup"`
	Indicator *bool  `yaml:"indicator"`
	StopGrace string `yaml:"stop_grace"`
}
