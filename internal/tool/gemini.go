package tool

func gemini() *Config {
	return &Config{
		Name: "Gemini CLI",
		Commands: &TypeConfig{
			Source:  ".claude/commands",
			Format:  FormatTOML,
			Target:  Paths{"~/.gemini/commands"},
			Convert: true,
		},
		Skills: &TypeConfig{
			Source: ".claude/skills",
			Target: Paths{"~/.gemini/skills"},
		},
		Rules: &TypeConfig{
			Source:        ".claude/CLAUDE.md",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.gemini/GEMINI.md"},
			ProjectTarget: Paths{"GEMINI.md"},
			Merge:         true,
		},
		MCP: &TypeConfig{
			Source:    ".claude.json",
			Target:    Paths{"~/.gemini/settings.json"},
			Convert:   true,
			Transform: "gemini",
		},
		Agents: &TypeConfig{
			Source:    ".claude/agents",
			Target:    Paths{"~/.gemini/agents"},
			Transform: "universal-agent",
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Agents},
	}
}
