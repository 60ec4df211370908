package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the remote wiki settings the client needs on every call.
type Config interface {
	BaseURL() string
	User() string
	Password() string
	LogPath() string
}

// LoadConfig reads ~/.daybook.yaml plus DAYBOOK_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.AutomaticEnv()
	_ = viper.BindEnv("baseurl")
	_ = viper.BindEnv("user")
	_ = viper.BindEnv("password")
	_ = viper.BindEnv("logpath")

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &fileConfig{
		URL:  viper.GetString("baseurl"),
		Usr:  viper.GetString("user"),
		Pass: viper.GetString("password"),
		Log:  viper.GetString("logpath"),
	}, nil
}

// SaveConfig persists the settings to ~/.daybook.yaml.
func SaveConfig(baseURL, user, password string) error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	viper.Set("baseurl", baseURL)
	viper.Set("user", user)
	viper.Set("password", password)
	return viper.WriteConfigAs(filepath.Join(home, ".daybook.yaml"))
}

type fileConfig struct {
	URL  string `json:"baseurl"`
	Usr  string `json:"user"`
	Pass string `json:"password"`
	Log  string `json:"logpath"`
}

func (f *fileConfig) BaseURL() string  { return f.URL }
func (f *fileConfig) User() string     { return f.Usr }
func (f *fileConfig) Password() string { return f.Pass }
func (f *fileConfig) LogPath() string  { return f.Log }
