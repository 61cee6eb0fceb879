package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/Fuabioo/vanta-mcp/internal/config"
	"github.com/Fuabioo/vanta-mcp/internal/logging"
	"github.com/Fuabioo/vanta-mcp/internal/tools"
)

const (
	serverName    = "vanta-universal"
	serverVersion = "0.1.0"
)

// Server wraps the MCP server with the vanta tool registry.
type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
	logger   *zap.Logger
}

// NewServer creates the MCP server and registers every tool in registry.
func NewServer(registry *tools.Registry, logger *zap.Logger) (*Server, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		registry: registry,
		logger:   logger,
	}

	s.mcp = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.logToolCalls),
	)

	for _, tool := range registry.List() {
		s.mcp.AddTool(tool, s.dispatch)
	}

	return s, nil
}

// dispatch routes a protocol tool call through the registry.
func (s *Server) dispatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.registry.Call(ctx, request.Params.Name, request.GetArguments())
}

// logToolCalls records the outcome and latency of each tool call.
func (s *Server) logToolCalls(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, request)

		fields := []zap.Field{
			zap.String("tool", request.Params.Name),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err != nil:
			s.logger.Warn("tool call failed", append(fields, zap.Error(err))...)
		case result != nil && result.IsError:
			s.logger.Info("tool call returned error result", append(fields, zap.String("result", tools.ResultText(result)))...)
		default:
			s.logger.Info("tool call", fields...)
		}

		return result, err
	}
}

// Serve runs the MCP protocol over in and out until in is closed or ctx is done.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s.mcp)
	// One worker: each tool call completes before the next one starts.
	server.WithWorkerPoolSize(1)(stdioServer)
	stdioServer.SetErrorLogger(logging.StdLogger(s.logger))

	err := stdioServer.Listen(ctx, in, out)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
}

// Serve builds the default registry from cfg and serves on stdio.
func Serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	registry, err := tools.Default(&tools.StubExecutor{
		Endpoint: cfg.ProjectURL(),
		Logger:   logger.Named("executor"),
	})
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	srv, err := NewServer(registry, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("serving MCP on stdio",
		zap.String("server", serverName),
		zap.Strings("tools", registry.Names()),
		zap.String("project", cfg.ProjectID),
	)

	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("stdio closed, shutting down")
	return nil
}
