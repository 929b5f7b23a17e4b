// Package tool describes the AI coding tools ai-sync migrates into.
//
// Every tool has a [Config] listing, per configuration type, where its
// files live and how they are produced: verbatim copy, format conversion,
// merge into a single file, or a named transform. Built-in tools are
// defined one per file and collected by [Default]; a user config may patch
// them or add new tools through [Registry.ApplyOverrides].
//
// Transforms are referenced by name (for example "opencode-agent" or
// "codex") and resolved against the strategy table in strategy.go, which
// is what lets a YAML, JSON or TOML config file select them.
package tool
