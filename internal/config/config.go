// Package config loads typeshare settings. Precedence, highest first: bound
// command-line flags, TYPESHARE_* environment variables, the config file,
// defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/phobologic/typeshare/internal/backend"
)

// EnvPrefix prefixes every environment variable, e.g. TYPESHARE_LANG.
const EnvPrefix = "TYPESHARE"

// FileName is the config file base name looked up in the working directory.
const FileName = "typeshare"

// Keys.
const (
	KeyLang        = "lang"
	KeyUseMarker   = "use-marker"
	KeyOptions     = "options"
	KeySwiftPrefix = "swift.prefix"
	KeyJavaPackage = "java.package"
	KeyLogVerbose  = "log.verbose"
	KeyLogJSON     = "log.json"
)

// DefaultLang is the backend used when none is configured.
const DefaultLang = "swift"

// Config is the resolved configuration.
type Config struct {
	Lang      string            `mapstructure:"lang"`
	UseMarker bool              `mapstructure:"use-marker"`
	Options   map[string]string `mapstructure:"options"`
	Swift     SwiftConfig       `mapstructure:"swift"`
	Java      JavaConfig        `mapstructure:"java"`
	Log       LogConfig         `mapstructure:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// SwiftConfig holds Swift backend settings.
type SwiftConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// JavaConfig holds Java backend settings.
type JavaConfig struct {
	Package string `mapstructure:"package"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
	JSON    bool `mapstructure:"json"`
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	KeyLang:        "lang",
	KeyUseMarker:   "use-marker",
	KeySwiftPrefix: "swift-prefix",
	KeyJavaPackage: "java-package",
	KeyLogVerbose:  "verbose",
	KeyLogJSON:     "log-json",
}

// SetDefaults configures default values for all keys.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLang, DefaultLang)
	v.SetDefault(KeyUseMarker, false)
	v.SetDefault(KeyOptions, map[string]string{})
	v.SetDefault(KeySwiftPrefix, "")
	v.SetDefault(KeyJavaPackage, "")
	v.SetDefault(KeyLogVerbose, false)
	v.SetDefault(KeyLogJSON, false)
}

// New returns a viper instance with defaults and environment binding, and
// the config file merged in. path selects an explicit file, which must
// exist; otherwise typeshare.{toml,yaml,json} is looked up in dir and may be
// absent.
func New(dir, path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "reading config file %s", path),
				"config files may be TOML, YAML, or JSON, chosen by extension")
		}
		return v, nil
	}

	file := findFile(dir)
	if file == "" {
		return v, nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", file)
	}
	return v, nil
}

// findFile returns the first typeshare config file in dir.
func findFile(dir string) string {
	for _, ext := range []string{".toml", ".yaml", ".yml", ".json"} {
		candidate := filepath.Join(dir, FileName+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// BindFlags binds the flags in fs that override config keys. Flags missing
// from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag --%s", name)
		}
	}
	return nil
}

// Load unmarshals the resolved configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	if cfg.Options == nil {
		cfg.Options = map[string]string{}
	}
	cfg.File = v.ConfigFileUsed()
	return &cfg, nil
}

// BackendOptions merges the generic options with the dedicated Swift and
// Java keys, then applies overrides on top. The dedicated keys win over the
// generic map; overrides win over both.
func (c *Config) BackendOptions(overrides map[string]string) map[string]string {
	out := make(map[string]string, len(c.Options)+len(overrides)+2)
	for k, val := range c.Options {
		out[k] = val
	}
	if c.Swift.Prefix != "" {
		out[backend.OptionPrefix] = c.Swift.Prefix
	}
	if c.Java.Package != "" {
		out[backend.OptionPackage] = c.Java.Package
	}
	for k, val := range overrides {
		out[k] = val
	}
	return out
}
