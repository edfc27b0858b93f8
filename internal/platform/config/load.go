package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables that override settings.
const EnvPrefix = "APP_"

// Option customizes Load.
type Option func(*loader)

type loader struct {
	dir     string
	envFile string
	k       *koanf.Koanf
	envKeys map[string]string
}

// WithConfigDir reads base.yaml and <profile>.yaml from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithEnvFile also reads APP_ variables from a dotenv file. A missing file
// is skipped, and variables already in the process environment win.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// Load builds the configuration for profile. Later layers override
// earlier ones:
//
//	defaults < base.yaml < <profile>.yaml < dotenv file < APP_ environment
//
// An environment name maps to the known key it spells, so
// APP_CACHE_REDIS_OP_TIMEOUT sets cache.redis.op_timeout rather than
// cache.redis.op.timeout.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: "configs", k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	for key, value := range defaults() {
		if err := l.k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	l.envKeys = make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		l.envKeys[strings.ReplaceAll(key, ".", "_")] = key
	}

	if err := l.loadEnvFile(); err != nil {
		return nil, err
	}
	if err := l.k.Load(env.Provider(".", env.Opt{Prefix: EnvPrefix, TransformFunc: l.envKey}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey maps APP_SERVER_READ_TIMEOUT to server.read_timeout. Names that
// spell no known key fall back to one level per underscore.
func (l *loader) envKey(name, value string) (string, any) {
	name = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if key, ok := l.envKeys[name]; ok {
		return key, value
	}
	return strings.ReplaceAll(name, "_", "."), value
}

// loadEnvFile applies the dotenv file without exporting it to the process.
func (l *loader) loadEnvFile() error {
	if l.envFile == "" {
		return nil
	}
	vars, err := godotenv.Read(l.envFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("reading %s: %w", l.envFile, err)
	}

	for name, value := range vars {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key, v := l.envKey(name, value)
		if err := l.k.Set(key, v); err != nil {
			return fmt.Errorf("applying %s from %s: %w", name, l.envFile, err)
		}
	}
	return nil
}

// checkProfile keeps the profile name inside the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("config profile is empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("config profile %q must be a bare name", profile)
	}
	return nil
}
