package config

const (
	defaultBaseURL        = "https://api.somtoday.nl/rest/v1"
	defaultTimeoutSeconds = 0
	defaultOutputDir      = "somtoday_takeout"
	defaultStateDir       = "~/.local/state/somtoday-takeout"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigPath     = "~/.config/somtoday-takeout/config.toml"
	projectConfigName     = "takeout.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Output: Output{
			Dir: defaultOutputDir,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
