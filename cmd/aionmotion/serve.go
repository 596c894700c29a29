package main

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"aionmotion/internal/api"
	"aionmotion/internal/mcp"
)

func serveCmd() *cobra.Command {
	var withMCP bool
	var withHTTP bool
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the motion grammar over MCP stdio and/or HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = project.HTTP.Addr
			}
			return runServe(cmd.Context(), withMCP, withHTTP, addr)
		},
	}
	cmd.Flags().BoolVar(&withMCP, "mcp", true, "Serve MCP tools over stdio")
	cmd.Flags().BoolVar(&withHTTP, "http", false, "Serve the HTTP API")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (defaults to http.addr from the config)")
	return cmd
}

func runServe(ctx context.Context, withMCP, withHTTP bool, addr string) error {
	if !withMCP && !withHTTP {
		return fmt.Errorf("nothing to serve: enable --mcp or --http")
	}

	resolver, err := newResolver(project)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if withMCP {
		server := mcp.NewServer(resolver, version)
		g.Go(func() error {
			return server.Run(ctx, &sdk.StdioTransport{})
		})
	}
	if withHTTP {
		server := api.NewServer(addr, resolver, logger)
		g.Go(func() error {
			return server.Start(ctx)
		})
	}
	return g.Wait()
}
