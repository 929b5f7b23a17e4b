package mcp

import (
	"sort"

	"github.com/spf13/cast"

	"github.com/beixiyo/ai-sync/pkg/deepmerge"
)

// ServersKey is the wrapper key of the Claude/Cursor/Gemini server map.
const ServersKey = "mcpServers"

// Kind discriminates MCP server entries.
type Kind int

const (
	// KindUnknown is an entry with neither a command nor a URL.
	KindUnknown Kind = iota

	// KindLocal is a process launched by command.
	KindLocal

	// KindRemote is a server reached over HTTP.
	KindRemote
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Local holds the fields of a command-launched server.
type Local struct {
	// Command is the executable. When the source gave the command as an
	// array, Command is its first element and CommandArgv holds the whole
	// array.
	Command     string
	CommandArgv []string
	Args        []string
	Env         map[string]string
}

// Argv returns the full argument vector: the source array when the command
// was given as one, otherwise Command followed by Args.
func (l *Local) Argv() []string {
	if l.CommandArgv != nil {
		return append([]string(nil), l.CommandArgv...)
	}
	return append([]string{l.Command}, l.Args...)
}

// Remote holds the fields of an HTTP server.
type Remote struct {
	URL     string
	Headers map[string]string
}

// Server is one classified entry of the server map.
type Server struct {
	Name   string
	Kind   Kind
	Local  *Local
	Remote *Remote

	// Raw is the entry as decoded from the source.
	Raw map[string]any
}

// ParseServer classifies a single entry.
func ParseServer(name string, raw map[string]any) *Server {
	s := &Server{Name: name, Raw: raw}

	if cmd, ok := raw["command"]; ok {
		s.Kind = KindLocal
		s.Local = parseLocal(cmd, raw)
		return s
	}

	_, hasURL := raw["url"]
	_, hasHTTPURL := raw["httpUrl"]
	if hasURL || hasHTTPURL {
		s.Kind = KindRemote
		s.Remote = &Remote{
			URL:     firstString(raw["url"], raw["httpUrl"]),
			Headers: stringMap(raw["headers"]),
		}
	}

	return s
}

func parseLocal(cmd any, raw map[string]any) *Local {
	l := &Local{
		Args: cast.ToStringSlice(raw["args"]),
		Env:  stringMap(raw["env"]),
	}

	switch v := cmd.(type) {
	case []any, []string:
		l.CommandArgv = cast.ToStringSlice(v)
		if l.CommandArgv == nil {
			l.CommandArgv = []string{}
		}
		if len(l.CommandArgv) > 0 {
			l.Command = l.CommandArgv[0]
		}
	default:
		l.Command = cast.ToString(v)
	}

	return l
}

// Config is the classified server map of a source document.
type Config struct {
	Servers map[string]*Server
}

// Parse classifies every entry under doc["mcpServers"]. A missing or
// non-object wrapper yields an empty Config; entries that are not objects
// are ignored.
func Parse(doc map[string]any) *Config {
	cfg := &Config{Servers: map[string]*Server{}}

	servers, ok := deepmerge.AsMap(doc[ServersKey])
	if !ok {
		return cfg
	}

	for name, v := range servers {
		raw, ok := deepmerge.AsMap(v)
		if !ok {
			continue
		}
		cfg.Servers[name] = ParseServer(name, raw)
	}

	return cfg
}

// Names returns the server names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Servers))
	for name := range c.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func firstString(vals ...any) string {
	for _, v := range vals {
		if s := cast.ToString(v); s != "" {
			return s
		}
	}
	return ""
}

func stringMap(v any) map[string]string {
	if v == nil {
		return nil
	}
	m := cast.ToStringMapString(v)
	if len(m) == 0 {
		return nil
	}
	return m
}
