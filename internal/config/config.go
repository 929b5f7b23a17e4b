package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/paths"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// FileName is the config file base name; viper tries every supported
// extension (yaml, yml, json, toml).
const FileName = "ai-sync"

// EnvPrefix prefixes environment overrides, e.g.
// AI_SYNC_GLOBAL_DEFAULT_SOURCE_DIR.
const EnvPrefix = "AI_SYNC"

// DefaultConfigDir is used when neither the config file nor package.json
// names one.
const DefaultConfigDir = "~/.claude"

// Config represents the top-level configuration structure.
type Config struct {
	Global Global `mapstructure:"global" yaml:"global"`

	// Tools maps tool names to partial tool configs that are deep-merged
	// over the built-in registry.
	Tools map[string]any `mapstructure:"tools" yaml:"tools"`
}

// Global holds settings that are not tied to a tool.
type Global struct {
	DefaultSourceDir   string   `mapstructure:"default_source_dir" yaml:"default_source_dir"`
	DefaultConfigDir   string   `mapstructure:"default_config_dir" yaml:"default_config_dir"`
	DefaultTargetTools []string `mapstructure:"default_target_tools" yaml:"default_target_tools"`
}

var globalKeys = []string{
	"global.default_source_dir",
	"global.default_config_dir",
	"global.default_target_tools",
}

// Init resets viper and configures the search for ai-sync.{yaml,yml,json,toml}
// in workDir, then in the XDG config directory.
// Call this once at application startup before Load.
func Init(workDir string) {
	viper.Reset()

	viper.SetConfigName(FileName)
	if workDir != "" {
		viper.AddConfigPath(workDir)
	}
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range globalKeys {
		_ = viper.BindEnv(key)
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the locations set up by Init, and a
// missing file yields the defaults.
//
// When the file does not set global.default_config_dir, the ai-sync.configDir
// field of workDir/package.json is used, then DefaultConfigDir.
func Load(path, workDir string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case os.IsNotExist(err) || errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if cfg.Global.DefaultConfigDir == "" && workDir != "" {
		dir, err := PackageConfigDir(workDir)
		if err != nil {
			return nil, err
		}
		cfg.Global.DefaultConfigDir = dir
	}
	if cfg.Global.DefaultConfigDir == "" {
		cfg.Global.DefaultConfigDir = DefaultConfigDir
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "validating config: %v", errs[0])
	}

	return &cfg, nil
}

// Used returns the config file that was read, or "".
func Used() string {
	return viper.ConfigFileUsed()
}

// packageJSON is the key ai-sync reads in package.json.
const packageJSON = "ai-sync"

// PackageConfigDir returns the ai-sync.configDir field of dir/package.json,
// resolved against dir. A missing file or field yields "".
func PackageConfigDir(dir string) (string, error) {
	p := filepath.Join(dir, "package.json")
	if !fileutil.FileExists(p) {
		return "", nil
	}

	doc, err := fileutil.ReadJSON(p)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", p)
	}

	section, ok := doc[packageJSON].(map[string]any)
	if !ok {
		return "", nil
	}
	configDir, _ := section["configDir"].(string)
	if configDir == "" {
		return "", nil
	}

	configDir = paths.ExpandHome(configDir)
	if !filepath.IsAbs(configDir) {
		configDir = filepath.Join(dir, configDir)
	}
	return configDir, nil
}
