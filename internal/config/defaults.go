package config

// Default returns a Config with sensible default values, applied before
// the YAML document is unmarshalled on top of it.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Operation: "",
			Fixture:   "",
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
