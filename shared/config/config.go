package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/coursehub/forumtree/shared/threadtree"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ApiBaseURL         string        `yaml:"api_base_url" validate:"required,url"`
	ListenAddr         string        `yaml:"listen_addr" validate:"required"`
	RequestTimeout     time.Duration `yaml:"request_timeout" validate:"required"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	SecureCookies      bool          `yaml:"secure_cookies"`
	LoginURL           string        `yaml:"login_url" validate:"omitempty,url"` // LMS sign-in page for anonymous browsers
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	ForumCountWorkers  int           `yaml:"forum_count_workers" validate:"gte=0"` // parallel backend calls on the forum list page
	ThreadTree         ThreadTree    `yaml:"thread_tree"`
}

type ThreadTree struct {
	MaxDepth      int    `yaml:"max_depth" validate:"gte=0"`
	OnOrphan      string `yaml:"on_orphan" validate:"omitempty,oneof=drop root error"`
	OnDuplicateId string `yaml:"on_duplicate_id" validate:"omitempty,oneof=last_wins error"`
	IndentUnit    int    `yaml:"indent_unit" validate:"gte=0"` // px of margin per reply level
}

type Private struct {
	JwtSecret string `yaml:"jwt_secret" validate:"required"`
}

func (t ThreadTree) Options() threadtree.Options {
	return threadtree.Options{
		OnOrphan:      threadtree.OrphanPolicy(t.OnOrphan),
		OnDuplicateId: threadtree.DuplicatePolicy(t.OnDuplicateId),
		MaxDepth:      t.MaxDepth,
	}
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics
// if either is missing or fails validation.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.Public.ThreadTree.Options().Validate()
}
