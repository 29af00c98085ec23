package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bnema/hostpage/internal/domain"
	"github.com/bnema/hostpage/pkg/logger"
)

// FileName is the config file looked up when no path is given.
const FileName = "hostpage.yml"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Publish PublishConfig `yaml:"publish"`
	Docker  DockerConfig  `yaml:"docker"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr        string  `yaml:"addr"`
	PublicDir   string  `yaml:"publicDir"`   // empty serves the embedded page
	GracePeriod int     `yaml:"gracePeriod"` // seconds
	RateLimit   float64 `yaml:"rateLimit"`   // requests per second per client, 0 disables
}

type PublishConfig struct {
	Region       string   `yaml:"region"`
	Account      string   `yaml:"account"`
	Repository   string   `yaml:"repository"`
	Tag          string   `yaml:"tag"`
	BuildContext string   `yaml:"buildContext"`
	Dockerfile   string   `yaml:"dockerfile"`
	RunPorts     []string `yaml:"runPorts"`
	LoginMode    string   `yaml:"loginMode"`
	Sudo         bool     `yaml:"sudo"`
	LogFile      string   `yaml:"logFile"`
}

type DockerConfig struct {
	Host string `yaml:"host"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default values
var (
	defaultAddr         = ":80"
	defaultGracePeriod  = 10 // seconds
	defaultRegion       = "ap-southeast-1"
	defaultAccount      = "459688032609"
	defaultRepository   = "next-app"
	defaultTag          = "latest"
	defaultBuildContext = "."
	defaultRunPorts     = []string{"3000:3000"}
	defaultLoginMode    = string(domain.LoginModeCLI)
	defaultLogLevel     = "info"
)

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the optional .env file, the YAML config at path (or FileName in
// the working or user config directory when path is empty), then applies
// HOSTPAGE_* environment overrides and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	file, explicit := path, path != ""
	if !explicit {
		file = findConfigFile()
	}
	if file != "" {
		if err := readFile(file, cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		} else {
			logger.Debug("Using config file", "path", file)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// findConfigFile returns the first existing candidate, or "".
func findConfigFile() string {
	candidates := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "hostpage", "config.yml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func applyEnv(cfg *Config) {
	envString("HOSTPAGE_ADDR", &cfg.Server.Addr)
	envString("HOSTPAGE_PUBLIC_DIR", &cfg.Server.PublicDir)
	envString("HOSTPAGE_REGION", &cfg.Publish.Region)
	envString("HOSTPAGE_ACCOUNT", &cfg.Publish.Account)
	envString("HOSTPAGE_REPOSITORY", &cfg.Publish.Repository)
	envString("HOSTPAGE_TAG", &cfg.Publish.Tag)
	envString("HOSTPAGE_LOGIN_MODE", &cfg.Publish.LoginMode)
	envString("HOSTPAGE_PUBLISH_LOG", &cfg.Publish.LogFile)
	envString("HOSTPAGE_LOG_LEVEL", &cfg.Logging.Level)

	if v := os.Getenv("HOSTPAGE_RUN_PORTS"); v != "" {
		cfg.Publish.RunPorts = strings.Split(v, ",")
	}
	if v := os.Getenv("HOSTPAGE_SUDO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Publish.Sudo = b
		} else {
			logger.Warn("Ignoring invalid HOSTPAGE_SUDO", "value", v)
		}
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("HOSTPAGE_ADDR") == "" {
		cfg.Server.Addr = ":" + v
	}
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// applyDefaults fills every zero field with its default value.
func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	if cfg.Server.GracePeriod == 0 {
		cfg.Server.GracePeriod = defaultGracePeriod
	}
	if cfg.Publish.Region == "" {
		cfg.Publish.Region = defaultRegion
	}
	if cfg.Publish.Account == "" {
		cfg.Publish.Account = defaultAccount
	}
	if cfg.Publish.Repository == "" {
		cfg.Publish.Repository = defaultRepository
	}
	if cfg.Publish.Tag == "" {
		cfg.Publish.Tag = defaultTag
	}
	if cfg.Publish.BuildContext == "" {
		cfg.Publish.BuildContext = defaultBuildContext
	}
	if len(cfg.Publish.RunPorts) == 0 {
		cfg.Publish.RunPorts = append([]string(nil), defaultRunPorts...)
	}
	if cfg.Publish.LoginMode == "" {
		cfg.Publish.LoginMode = defaultLoginMode
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}

// Validate checks the server settings. The publish target is validated by the
// commands that use it, so serve still starts with an incomplete publish
// section.
func (c *Config) Validate() error {
	if c.Server.GracePeriod < 0 {
		return fmt.Errorf("server.gracePeriod must not be negative")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rateLimit must not be negative")
	}
	if c.Server.PublicDir != "" {
		info, err := os.Stat(c.Server.PublicDir)
		if err != nil {
			return fmt.Errorf("server.publicDir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("server.publicDir %s is not a directory", c.Server.PublicDir)
		}
	}
	return nil
}

// GraceDuration returns the shutdown grace period.
func (c *Config) GraceDuration() time.Duration {
	return time.Duration(c.Server.GracePeriod) * time.Second
}

// PublishTarget converts the publish section into a domain target.
func (c *Config) PublishTarget() domain.PublishTarget {
	return domain.PublishTarget{
		Region:       c.Publish.Region,
		Account:      c.Publish.Account,
		Repository:   c.Publish.Repository,
		Tag:          c.Publish.Tag,
		BuildContext: c.Publish.BuildContext,
		Dockerfile:   c.Publish.Dockerfile,
		RunPorts:     c.Publish.RunPorts,
		LoginMode:    domain.LoginMode(c.Publish.LoginMode),
		Sudo:         c.Publish.Sudo,
	}
}
