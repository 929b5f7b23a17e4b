package tool

import "github.com/beixiyo/ai-sync/internal/errors"

// ConfigType is a kind of configuration artifact.
type ConfigType string

// Configuration types in migration order.
const (
	Commands ConfigType = "commands"
	Skills   ConfigType = "skills"
	Rules    ConfigType = "rules"
	MCP      ConfigType = "mcp"
	Settings ConfigType = "settings"
	Agents   ConfigType = "agents"
)

// AllTypes returns every configuration type in migration order.
func AllTypes() []ConfigType {
	return []ConfigType{Commands, Skills, Rules, MCP, Settings, Agents}
}

// ParseConfigType validates a configuration type name.
func ParseConfigType(s string) (ConfigType, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(errors.ErrInvalidConfig, "unknown configuration type %q", s)
}

// Format is the output format of a configuration type.
type Format string

// Output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatTOML     Format = "toml"
	FormatMDC      Format = "mdc"
	FormatJSON     Format = "json"
)

// Paths is an ordered list of candidate paths. In config files it may be
// written as a single string or a list.
type Paths []string

// TypeConfig describes how one configuration type is produced for a tool.
// Field tags are shared by the JSON and mapstructure codecs so defaults and
// user overrides merge on the same keys.
type TypeConfig struct {
	// Source is the conventional location inside the source tree. It is
	// informational; sources are resolved by the migrators.
	Source string `json:"source,omitempty" mapstructure:"source"`

	// Target lists candidate target paths; the first existing one wins,
	// otherwise the first is used.
	Target Paths `json:"target,omitempty" mapstructure:"target"`

	// ProjectTarget replaces Target for project-scope runs. When empty the
	// leading "~" of each Target is replaced by the project directory.
	ProjectTarget Paths `json:"project_target,omitempty" mapstructure:"project_target"`

	// Mirror lists extra paths that receive a copy of a merged document.
	Mirror Paths `json:"mirror,omitempty" mapstructure:"mirror"`

	Format  Format `json:"format,omitempty" mapstructure:"format"`
	Convert bool   `json:"convert,omitempty" mapstructure:"convert"`
	Merge   bool   `json:"merge,omitempty" mapstructure:"merge"`

	// Transform names a content transform (commands, skills, rules,
	// agents) or an MCP document transform (mcp).
	Transform string `json:"transform,omitempty" mapstructure:"transform"`

	// CustomMerge names a rules directory merge strategy.
	CustomMerge string `json:"custom_merge,omitempty" mapstructure:"custom_merge"`
}

// Config is the complete description of one tool.
type Config struct {
	Name      string       `json:"name,omitempty" mapstructure:"name"`
	Commands  *TypeConfig  `json:"commands,omitempty" mapstructure:"commands"`
	Skills    *TypeConfig  `json:"skills,omitempty" mapstructure:"skills"`
	Rules     *TypeConfig  `json:"rules,omitempty" mapstructure:"rules"`
	MCP       *TypeConfig  `json:"mcp,omitempty" mapstructure:"mcp"`
	Settings  *TypeConfig  `json:"settings,omitempty" mapstructure:"settings"`
	Agents    *TypeConfig  `json:"agents,omitempty" mapstructure:"agents"`
	Supported []ConfigType `json:"supported,omitempty" mapstructure:"supported"`
}

// For returns the sub-config of t, or nil when the tool has none.
func (c *Config) For(t ConfigType) *TypeConfig {
	switch t {
	case Commands:
		return c.Commands
	case Skills:
		return c.Skills
	case Rules:
		return c.Rules
	case MCP:
		return c.MCP
	case Settings:
		return c.Settings
	case Agents:
		return c.Agents
	}
	return nil
}

// Supports reports whether t is in the tool's supported list.
func (c *Config) Supports(t ConfigType) bool {
	for _, s := range c.Supported {
		if s == t {
			return true
		}
	}
	return false
}

// Scope selects between global and project targets.
type Scope struct {
	IsProject  bool
	ProjectDir string
}
