package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads host settings from settings.json in configDir and applies
// defaults. Missing file is not an error; the defaults stand.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("tickHz", 60)

	viper.SetDefault("scripts.dir", "./plugins")
	viper.SetDefault("scripts.loadPlugins", true)

	viper.SetDefault("examples.vehicleExit", true)
	viper.SetDefault("examples.indicators", true)
	viper.SetDefault("examples.physicsDemo", true)
	viper.SetDefault("examples.pedPatrol", true)

	viper.SetConfigName("settings.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
