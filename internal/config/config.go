package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

var ErrConfigNotFound = errors.New("configuration not found")

const (
	FileName             = "config.json"
	DefaultPrimaryBranch = "main"
)

// Settings is read once at startup and never written back.
type Settings struct {
	BaseURL       string `mapstructure:"baseUrl"`
	Mail          string `mapstructure:"mail"`
	Token         string `mapstructure:"token"`
	PrimaryBranch string `mapstructure:"primaryBranch"`

	// Path is the file the settings were loaded from.
	Path string `mapstructure:"-"`
}

// Load reads the settings from path, or from the first existing entry of
// SearchPaths when path is empty.
func Load(path string) (*Settings, error) {
	if path == "" {
		found, err := find()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("primaryBranch", DefaultPrimaryBranch)
	if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSON(data))); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	settings.Path = path
	settings.BaseURL = strings.TrimRight(strings.TrimSpace(settings.BaseURL), "/")
	if strings.TrimSpace(settings.PrimaryBranch) == "" {
		settings.PrimaryBranch = DefaultPrimaryBranch
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate reports every missing or malformed key at once.
func (s *Settings) Validate() error {
	var problems []string

	if s.BaseURL == "" {
		problems = append(problems, "baseUrl is required")
	} else if u, err := url.Parse(s.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("baseUrl must be an absolute http(s) URL, got %q", s.BaseURL))
	}
	if strings.TrimSpace(s.Mail) == "" {
		problems = append(problems, "mail is required")
	}
	if strings.TrimSpace(s.Token) == "" {
		problems = append(problems, "token is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config %s: %s", s.Path, strings.Join(problems, "; "))
	}
	return nil
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gjb"), nil
}

// SearchPaths lists the locations tried, in order, when no explicit path is given.
func SearchPaths() []string {
	paths := []string{FileName}
	if dir, err := ConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	return paths
}

func find() (string, error) {
	for _, candidate := range SearchPaths() {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrConfigNotFound
}

func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return fmt.Sprintf("%s***%s", token[:4], token[len(token)-4:])
}
