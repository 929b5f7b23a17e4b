// Package config loads the optional ai-sync user configuration using Viper.
//
// # Configuration File
//
// The file is named ai-sync with any extension viper understands (yaml,
// yml, json, toml). It is looked up in the working directory, then in
// ~/.config/ai-sync/, unless an explicit path is given:
//
//	global:
//	  default_source_dir: ~/work
//	  default_config_dir: ~/.claude
//	  default_target_tools: [cursor, gemini]
//	tools:
//	  cursor:
//	    commands:
//	      target: ~/custom/cursor/commands
//	  windsurf:
//	    name: Windsurf
//	    rules:
//	      target: ~/.windsurf/rules.md
//	    supported: [rules]
//
// Entries under tools are deep-merged over the built-in tool registry by
// the caller. Environment variables prefixed with AI_SYNC_ override the
// global keys, for example AI_SYNC_GLOBAL_DEFAULT_SOURCE_DIR.
//
// # package.json
//
// A package.json in the working directory may set the Claude config
// directory for the project:
//
//	{"ai-sync": {"configDir": "./.claude"}}
package config
