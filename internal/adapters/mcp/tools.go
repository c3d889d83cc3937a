package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"linkreport/internal/application/commands"
	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

// ToolRegistry exposes one invocable report tool per configured preset plus
// preset management tools. Report tools are re-registered whenever the
// preset list changes.
type ToolRegistry struct {
	server *server.MCPServer
	vault  ports.Vault
	store  ports.PresetStore
	log    *zap.SugaredLogger

	reportTools []string
}

// NewToolRegistry creates a registry bound to one MCP server.
func NewToolRegistry(s *server.MCPServer, vault ports.Vault, store ports.PresetStore, log *zap.SugaredLogger) *ToolRegistry {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ToolRegistry{server: s, vault: vault, store: store, log: log}
}

// RegisterAll adds the preset management tools and the per-preset report
// tools for the currently persisted presets.
func (r *ToolRegistry) RegisterAll() error {
	r.server.AddTool(listPresetsTool(), r.listPresetsHandler)
	r.server.AddTool(addPresetTool(), r.addPresetHandler)
	r.server.AddTool(deletePresetTool(), r.deletePresetHandler)
	return r.Refresh()
}

// Refresh drops the registered report tools and re-adds one per persisted
// preset.
func (r *ToolRegistry) Refresh() error {
	if len(r.reportTools) > 0 {
		r.server.DeleteTools(r.reportTools...)
		r.reportTools = nil
	}

	presets, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	for _, preset := range presets {
		name := reportToolName(preset.Name)
		r.server.AddTool(
			mcp.NewTool(name,
				mcp.WithDescription(fmt.Sprintf("Generate the %q link report and write it to %s.", preset.Name, preset.OutputPath)),
			),
			r.reportHandler(preset.Name),
		)
		r.reportTools = append(r.reportTools, name)
	}
	r.log.Debugf("registered %d report tools", len(r.reportTools))
	return nil
}

func (r *ToolRegistry) reportHandler(presetName string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		presets, err := r.store.Load()
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewReportCommand(r.vault, presets, r.log, presetName)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- preset management ---

func listPresetsTool() mcp.Tool {
	return mcp.NewTool("preset_list",
		mcp.WithDescription("List configured report presets with their output paths and options."),
	)
}

func (r *ToolRegistry) listPresetsHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	presets, err := r.store.Load()
	if err != nil {
		return toolError(err)
	}
	if len(presets) == 0 {
		return mcp.NewToolResultText("No presets configured."), nil
	}

	var sb strings.Builder
	for _, p := range presets {
		fmt.Fprintf(&sb, "%s -> %s%s\n", p.Name, p.OutputPath, presetFlags(p))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func addPresetTool() mcp.Tool {
	return mcp.NewTool("preset_add",
		mcp.WithDescription("Add a new report preset with default options."),
		mcp.WithString("name",
			mcp.Description("Unique preset name"),
			mcp.Required(),
		),
	)
}

func (r *ToolRegistry) addPresetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")

	result, err := commands.NewAddPresetCommand(r.store, name).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if err := r.Refresh(); err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

func deletePresetTool() mcp.Tool {
	return mcp.NewTool("preset_delete",
		mcp.WithDescription("Delete a report preset by name."),
		mcp.WithString("name",
			mcp.Description("Preset name"),
			mcp.Required(),
		),
	)
}

func (r *ToolRegistry) deletePresetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")

	result, err := commands.NewDeletePresetCommand(r.store, name).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if err := r.Refresh(); err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- helpers ---

func reportToolName(preset string) string {
	slug := strings.ToLower(preset)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	return "report_" + slug
}

func presetFlags(p domain.PresetConfig) string {
	var flags []string
	if p.IncludeEmbeds {
		flags = append(flags, "embeds")
	}
	if p.NonexistentOnly {
		flags = append(flags, "nonexistent-only")
	}
	if p.SortAlphabetical {
		flags = append(flags, "alphabetical")
	}
	if len(flags) == 0 {
		return ""
	}
	return " (" + strings.Join(flags, ", ") + ")"
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
