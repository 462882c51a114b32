package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Settings is subalign's persisted configuration, the key schema/
// describes for srtalign's defaults: dictionary location, fallback
// aligner name, and the anchor-search tunables.
type Settings struct {
	DictionaryDir    string  `mapstructure:"dictionary_dir"`
	Fallback         string  `mapstructure:"fallback"`
	Window           int     `mapstructure:"window"`
	MaxMatches       int     `mapstructure:"max_matches"`
	CognateThreshold float64 `mapstructure:"cognate_threshold"`
	CognateRange     float64 `mapstructure:"cognate_range"`
}

func getConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, "subalign")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// defaultDictionaryDir falls back to ~/.subalign/dictionaries when XDG's
// data dir can't be resolved.
func defaultDictionaryDir() string {
	if dir, err := homedir.Expand(filepath.Join(xdg.DataHome, "subalign", "dictionaries")); err == nil {
		return dir
	}
	home, err := homedir.Dir()
	if err != nil {
		return "dictionaries"
	}
	return filepath.Join(home, ".subalign", "dictionaries")
}

// InitConfig loads subalign's config file, creating it with documented
// defaults if it doesn't exist yet.
func InitConfig(customPath string) error {
	if customPath != "" {
		viper.SetConfigFile(customPath)
	} else {
		configPath, err := getConfigPath()
		if err != nil {
			return err
		}
		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("dictionary_dir", defaultDictionaryDir())
	viper.SetDefault("fallback", "uplug")
	viper.SetDefault("window", 25)
	viper.SetDefault("max_matches", 10)
	viper.SetDefault("cognate_threshold", 0.7)
	viper.SetDefault("cognate_range", 0.7)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			if err := viper.SafeWriteConfigAs(viper.ConfigFileUsed()); err != nil {
				return err
			}
		} else {
			return err
		}
	}

	return nil
}

// LoadSettings reads the current config into a Settings value.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// SaveSettings persists settings back to the config file.
func SaveSettings(settings Settings) error {
	viper.Set("dictionary_dir", settings.DictionaryDir)
	viper.Set("fallback", settings.Fallback)
	viper.Set("window", settings.Window)
	viper.Set("max_matches", settings.MaxMatches)
	viper.Set("cognate_threshold", settings.CognateThreshold)
	viper.Set("cognate_range", settings.CognateRange)

	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	viper.SetConfigFile(configPath)
	return viper.WriteConfig()
}
