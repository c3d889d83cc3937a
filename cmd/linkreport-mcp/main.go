package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"linkreport/internal/adapters/filesystem"
	mcpadapter "linkreport/internal/adapters/mcp"
	"linkreport/internal/adapters/presetstore"
	"linkreport/internal/config"
	"linkreport/internal/logging"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	vault := filesystem.NewVault(*vaultFlag)
	store := presetstore.New(config.PresetsPath(*vaultFlag))
	logger := logging.New(store.Verbose())
	defer logger.Sync()

	mcpServer := server.NewMCPServer(
		"linkreport-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	registry := mcpadapter.NewToolRegistry(mcpServer, vault, store, logger)
	if err := registry.RegisterAll(); err != nil {
		log.Fatalf("linkreport-mcp: %v", err)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("linkreport-mcp: %v", err)
	}
}
