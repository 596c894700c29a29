package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"aionmotion/internal/motion"
)

type Server struct {
	resolver *motion.Resolver
	mcp      *sdk.Server
}

func NewServer(resolver *motion.Resolver, version string) *Server {
	s := &Server{
		resolver: resolver,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "aionmotion",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
