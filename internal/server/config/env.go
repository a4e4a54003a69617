package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays values from TP_* environment variables. Variables that
// are not set leave the current value untouched. Malformed values panic, the
// same as a malformed JSON file.
func parseEnv(config *Config) {
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(err)
	}
}
