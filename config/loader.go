package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/nestera/nestera-web/logger"
)

// LoaderConfig collects the options given to LoadConfig.
type LoaderConfig struct {
	FileSystem  FileSystem
	ConfigFile  string
	EnvFile     string
	EnvBindings []EnvBinding
	Getenv      func(string) string
}

// EnvBinding maps a config key to environment variable names. The first
// variable with a non-empty value wins.
type EnvBinding struct {
	Key  string
	Envs []string
}

// Bind builds an EnvBinding.
func Bind(key string, envs ...string) EnvBinding {
	return EnvBinding{Key: key, Envs: envs}
}

// LoaderOption configures LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem replaces the OS file system used to find and read files.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile skips the config.yml search. A missing file is not an error.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile skips the .env search. A missing file is not an error.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvBindings adds explicit aliases such as PORT for server.port. They
// take precedence over every other source.
func WithEnvBindings(bindings ...EnvBinding) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvBindings = append(lc.EnvBindings, bindings...) }
}

// WithGetenv replaces os.Getenv when resolving explicit bindings.
func WithGetenv(getenv func(string) string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Getenv = getenv }
}

// LoadConfig fills cfg from, lowest precedence first: config.yml, the .env
// file, the process environment and the explicit bindings. A config file
// that exists but does not parse is an error.
func LoadConfig(serviceName string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: OSFileSystem{}, Getenv: os.Getenv}
	for _, opt := range opts {
		opt(&lc)
	}
	files := (&Resolver{FileSystem: lc.FileSystem}).ResolveFiles(serviceName, lc)

	v := viper.New()
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("Ignoring unreadable env file", logger.ErrorFields("load_env", err))
		}
	}
	bindEnviron(v, os.Environ())

	for _, b := range lc.EnvBindings {
		for _, name := range b.Envs {
			if val := lc.Getenv(name); val != "" {
				v.Set(b.Key, val)
				break
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode config for %s: %w", serviceName, err)
	}
	return nil
}

// bindEnviron sets every KEY=value pair under each config key it might
// spell, so SITE_BASE_URL reaches site.base_url. Keys naming a whole
// section are left alone.
func bindEnviron(v *viper.Viper, environ []string) {
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		for _, k := range keyVariants(key) {
			if _, section := v.Get(k).(map[string]any); section {
				continue
			}
			v.Set(k, val)
		}
	}
}

// keyVariants lists the dotted spellings of an env name: SITE_BASE_URL gives
// site_base_url, site.base_url and site.base.url.
func keyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	variants := []string{lower}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	if len(parts) > 2 {
		variants = append(variants, strings.Join(parts, "."))
	}
	return variants
}
