// Package config loads articlemark settings from defaults, an optional
// articlemark.yaml, a .env file and ARTICLEMARK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/riverfjs/articlemark"
	"github.com/riverfjs/articlemark/internal/fetch"
	"github.com/riverfjs/articlemark/internal/site"
)

// EnvPrefix 环境变量前缀，如 ARTICLEMARK_DATA_DIR
const EnvPrefix = "ARTICLEMARK"

// Config holds the application configuration
type Config struct {
	DataDir           string        `mapstructure:"data_dir"`
	ArticlesDir       string        `mapstructure:"articles_dir"`
	SiteName          string        `mapstructure:"site_name"`
	Addr              string        `mapstructure:"addr"`
	TrustHTML         bool          `mapstructure:"trust_html"`
	RequireLinkTarget bool          `mapstructure:"require_link_target"`
	Strict            bool          `mapstructure:"strict"`
	Debug             bool          `mapstructure:"debug"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// SetDefaults registers every key so environment variables can override it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("articles_dir", "")
	v.SetDefault("site_name", site.DefaultSiteName)
	v.SetDefault("addr", ":8080")
	v.SetDefault("trust_html", false)
	v.SetDefault("require_link_target", true)
	v.SetDefault("strict", false)
	v.SetDefault("debug", false)
	v.SetDefault("timeout", fetch.DefaultTimeout)
}

// Load reads the configuration into a Config. When no paths are given the
// config file is searched in ~/.config/articlemark, ~ and the working
// directory. A missing config file or .env is not an error.
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	// .env 可选，已存在的环境变量优先
	_ = godotenv.Load()

	SetDefaults(v)

	v.SetConfigName("articlemark")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".config", "articlemark"), home)
		}
		paths = append(paths, ".")
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if c.Timeout <= 0 {
		c.Timeout = fetch.DefaultTimeout
	}
	return &c, nil
}

// RenderConfig returns the converter configuration for c.
func (c *Config) RenderConfig() *articlemark.RenderConfig {
	rc := articlemark.NewConfig()
	rc.RequireLinkTarget = c.RequireLinkTarget
	return rc
}

// ConvertOptions returns the converter options for c.
func (c *Config) ConvertOptions() []articlemark.Option {
	return []articlemark.Option{
		articlemark.WithConfig(c.RenderConfig()),
		articlemark.WithTrustedHTML(c.TrustHTML),
	}
}

// HTTPClient returns a client honoring the configured timeout.
func (c *Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.Timeout}
}

// Loader returns a site loader for the configured data source.
func (c *Config) Loader() *site.Loader {
	l := site.NewLoader(c.DataDir, c.HTTPClient())
	l.ArticlesDir = c.ArticlesDir
	l.Strict = c.Strict
	return l
}

// Renderer returns a site renderer for the configured site.
func (c *Config) Renderer() *site.Renderer {
	r := site.NewRenderer(c.ConvertOptions()...)
	if c.SiteName != "" {
		r.SiteName = c.SiteName
	}
	return r
}
