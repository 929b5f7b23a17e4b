package report

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/beixiyo/ai-sync/internal/tool"
)

// ToolTarget is the resolved target of one configuration type.
type ToolTarget struct {
	Type   tool.ConfigType `json:"type"`
	Target string          `json:"target"`
}

// ToolRow describes one registered tool.
type ToolRow struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Targets []ToolTarget `json:"targets"`
}

// ToolRows lists the tools of reg with targets resolved in scope.
func ToolRows(reg *tool.Registry, scope tool.Scope) []ToolRow {
	var rows []ToolRow
	for _, id := range reg.Names() {
		cfg, _ := reg.Lookup(id)
		row := ToolRow{ID: id, Name: cfg.Name}
		for _, t := range cfg.Supported {
			target, err := reg.ResolveTarget(id, t, scope)
			if err != nil {
				continue
			}
			row.Targets = append(row.Targets, ToolTarget{Type: t, Target: target})
		}
		rows = append(rows, row)
	}
	return rows
}

// Tools writes a tool listing to the output.
func (r *Reporter) Tools(rows []ToolRow) error {
	if r.format == FormatJSON {
		return r.writeJSON(rows)
	}

	bold := color.New(color.Bold).SprintFunc()
	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "%s (%s)\n", bold(row.ID), row.Name)
		for _, t := range row.Targets {
			fmt.Fprintf(r.out, "  %-9s %s\n", t.Type, t.Target)
		}
	}
	return nil
}
