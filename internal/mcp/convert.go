package mcp

// Transform reshapes a parsed source document into a target document.
type Transform func(doc map[string]any) map[string]any

// ToCodex converts to Codex's config.toml shape:
//
//	{"mcp_servers": {name: {command, args, env?}}}  local
//	{"mcp_servers": {name: {url, http_headers?}}}   remote
//
// A command given as an array is split into command and args. Unknown
// entries are dropped.
func ToCodex(doc map[string]any) map[string]any {
	cfg := Parse(doc)
	out := make(map[string]any, len(cfg.Servers))

	for name, s := range cfg.Servers {
		switch s.Kind {
		case KindLocal:
			argv := s.Local.Argv()
			entry := map[string]any{
				"command": "",
				"args":    anySlice(nil),
			}
			if len(argv) > 0 {
				entry["command"] = argv[0]
				entry["args"] = anySlice(argv[1:])
			}
			if len(s.Local.Env) > 0 {
				entry["env"] = anyMap(s.Local.Env)
			}
			out[name] = entry
		case KindRemote:
			entry := map[string]any{"url": s.Remote.URL}
			if len(s.Remote.Headers) > 0 {
				entry["http_headers"] = anyMap(s.Remote.Headers)
			}
			out[name] = entry
		}
	}

	return map[string]any{"mcp_servers": out}
}

// ToOpenCode converts to OpenCode's shape:
//
//	{"mcp": {name: {type: local, command: [cmd, ...args], enabled: true}}}
//	{"mcp": {name: {type: remote, url, enabled: true}}}
//
// Environment variables and headers are carried as "environment" and
// "headers" when present. Unknown entries are copied with enabled set.
func ToOpenCode(doc map[string]any) map[string]any {
	cfg := Parse(doc)
	out := make(map[string]any, len(cfg.Servers))

	for name, s := range cfg.Servers {
		switch s.Kind {
		case KindLocal:
			entry := map[string]any{
				"type":    "local",
				"command": anySlice(s.Local.Argv()),
				"enabled": true,
			}
			if len(s.Local.Env) > 0 {
				entry["environment"] = anyMap(s.Local.Env)
			}
			out[name] = entry
		case KindRemote:
			entry := map[string]any{
				"type":    "remote",
				"url":     s.Remote.URL,
				"enabled": true,
			}
			if len(s.Remote.Headers) > 0 {
				entry["headers"] = anyMap(s.Remote.Headers)
			}
			out[name] = entry
		default:
			entry := cloneMap(s.Raw)
			entry["enabled"] = true
			out[name] = entry
		}
	}

	return map[string]any{"mcp": out}
}

// ToGemini converts to the Gemini CLI and IFlow shape. Remote entries get
// httpUrl and type "streamable-http" with url removed; other entries pass
// through unchanged.
func ToGemini(doc map[string]any) map[string]any {
	cfg := Parse(doc)
	out := make(map[string]any, len(cfg.Servers))

	for name, s := range cfg.Servers {
		entry := cloneMap(s.Raw)
		if s.Kind == KindRemote {
			entry["httpUrl"] = s.Remote.URL
			entry["type"] = "streamable-http"
			delete(entry, "url")
		}
		out[name] = entry
	}

	return map[string]any{ServersKey: out}
}

// Passthrough copies the server map under "mcpServers" unchanged. A source
// without one yields an empty map.
func Passthrough(doc map[string]any) map[string]any {
	servers, ok := doc[ServersKey]
	if !ok || servers == nil {
		servers = map[string]any{}
	}
	return map[string]any{ServersKey: servers}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func anyMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func anySlice(s []string) []any {
	out := make([]any, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}
	return out
}
