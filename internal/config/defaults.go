package config

// GetDefaults returns the built-in configuration values, keyed like the config file.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"no_color":  false,
		"log_level": "warn",
	}
}

