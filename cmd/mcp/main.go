package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-costpilot/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"aws-costpilot-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAWSTools(s, tools.Config{
		Region:           cfg.AWSRegion,
		Profile:          cfg.AWSProfile,
		CatalogCachePath: cfg.CatalogCachePath,
		CatalogTTL:       cfg.CatalogTTL,
		AnomalyThreshold: cfg.AnomalyThreshold,
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
