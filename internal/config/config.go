// Package config loads optional defaults for the mdview command from a
// config file and the environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the command configuration.
type Config struct {
	Theme string        `mapstructure:"theme"`
	Addr  string        `mapstructure:"addr"`
	Poll  time.Duration `mapstructure:"poll"`
	CSS   string        `mapstructure:"css"`
	Title string        `mapstructure:"title"`
}

// Init reads mdview.yaml (XDG config dir, home, or cwd) and the
// MDVIEW_* environment. A missing or malformed config file is not an
// error; defaults apply.
func Init() (Config, error) {
	v := viper.New()
	v.SetDefault("theme", "default")
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("poll", 200*time.Millisecond)
	v.SetDefault("css", "")
	v.SetDefault("title", "")

	v.SetConfigName("mdview")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "mdview"))
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("MDVIEW")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
