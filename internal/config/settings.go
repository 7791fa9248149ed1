package config

import (
	"io/fs"
	"os"
	"time"

	"github.com/fs-over-http/fsh/internal/errors"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

const (
	HostEnv   = "FSH_HOST"
	SchemeEnv = "FSH_SCHEME"
)

// Settings are the defaults a shell starts with. Flags take precedence over the
// environment, which takes precedence over the settings file.
type Settings struct {
	Host    string `yaml:"host"`
	Scheme  string `yaml:"scheme"`
	Strict  bool   `yaml:"strict"`
	Timeout string `yaml:"timeout"`
	Prompt  string `yaml:"prompt"`
}

func DefaultSettings() Settings {
	return Settings{
		Scheme: "https",
		Prompt: "> ",
	}
}

// LoadSettings reads a YAML settings file over the defaults. A missing file is
// not an error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, errors.Wrapf(err, "unable to read %q", path)
	}

	if err := yaml.Unmarshal(contents, &settings); err != nil {
		return settings, errors.Wrapf(err, "unable to parse %q", path)
	}

	if _, err := settings.TimeoutDuration(); err != nil {
		return settings, errors.Wrapf(err, "invalid timeout in %q", path)
	}

	return settings, nil
}

// LoadEnv loads a dotenv file into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "unable to load %q", path)
	}

	return nil
}

// ApplyEnv overlays FSH_HOST and FSH_SCHEME.
func (s Settings) ApplyEnv() Settings {
	if host := os.Getenv(HostEnv); host != "" {
		s.Host = host
	}
	if scheme := os.Getenv(SchemeEnv); scheme != "" {
		s.Scheme = scheme
	}
	return s
}

func (s Settings) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if d < 0 {
		return 0, errors.Errorf("timeout %q must not be negative", s.Timeout)
	}

	return d, nil
}
