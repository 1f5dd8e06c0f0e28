package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/aretw0/tendril/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// SimulateResponse aligns with the HTTP run payload and provides a unified
// structure across adapters.
type SimulateResponse struct {
	Run      *domain.Run `json:"run" jsonschema_description:"The completed run, including the surviving trace"`
	Accepted bool        `json:"accepted" jsonschema_description:"Whether some branch reached the accept state"`
}

// SimulateArgs is the decoded argument set for the simulate_machine tool.
type SimulateArgs struct {
	Machine  string `mapstructure:"machine"`
	Input    string `mapstructure:"input"`
	MaxDepth int    `mapstructure:"max_depth"`
	Mode     string `mapstructure:"mode"`
	Metric   string `mapstructure:"metric"`
}

// Engine defines the interface required by the MCP server to interact with Tendril.
type Engine interface {
	ports.Simulator
}

// Server wraps the Tendril Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("tendril-mcp", strings.TrimSpace(tendril.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	// Start the SSE server
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Baggage, Sentry-Trace")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: simulate_machine
	simulateTool := mcp.NewTool("simulate_machine",
		mcp.WithDescription("Run a library machine against an input string and return the run, including the surviving trace."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Library machine name")),
		mcp.WithString("input", mcp.Description("Input string written on the tape before the head (may be empty)")),
		mcp.WithNumber("max_depth", mcp.Description("Bound on exploration depth (optional)")),
		mcp.WithString("mode", mcp.Description("Termination mode: eager or exhaustive (optional)")),
		mcp.WithString("metric", mcp.Description("Branching metric: state_diversity or per_level_branching (optional)")),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	// TOOL: describe_machine
	describeTool := mcp.NewTool("describe_machine",
		mcp.WithDescription("Get the full definition of a library machine for introspection."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Library machine name")),
		mcp.WithOutputSchema[schema.Document](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))

	// TOOL: list_machines
	s.mcpServer.AddTool(mcp.NewTool("list_machines",
		mcp.WithDescription("List the machine names available in the library."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.engine.Machines(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(names)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResponse, error) {
	var in SimulateArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return SimulateResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}
	if in.Machine == "" {
		return SimulateResponse{}, fmt.Errorf("machine is required")
	}

	req := ports.SimulateRequest{
		Machine:  in.Machine,
		Input:    in.Input,
		MaxDepth: in.MaxDepth,
	}

	if in.Mode != "" {
		mode, err := domain.ParseTerminationMode(in.Mode)
		if err != nil {
			return SimulateResponse{}, err
		}
		req.Mode = mode
	}
	if in.Metric != "" {
		metric, err := domain.ParseMetricKind(in.Metric)
		if err != nil {
			return SimulateResponse{}, err
		}
		req.Metric = metric
	}

	run, err := s.engine.Simulate(ctx, req)
	if err != nil {
		slog.Warn("MCP Simulate: run failed", "machine", in.Machine, "error", err)
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}

	return SimulateResponse{
		Run:      run,
		Accepted: run.Result.Status == domain.StatusAccepted,
	}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.Document, error) {
	name, _ := args["machine"].(string)
	if name == "" {
		return schema.Document{}, fmt.Errorf("machine is required")
	}

	m, err := s.engine.Machine(ctx, name)
	if err != nil {
		return schema.Document{}, fmt.Errorf("describe failed: %w", err)
	}
	return *schema.FromMachine(m), nil
}

func (s *Server) registerResources() {
	// EXPOSE: tendril://machines
	s.mcpServer.AddResource(mcp.NewResource("tendril://machines", "Machine Library",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.engine.Machines(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list machines: %w", err)
		}

		docs := make([]*schema.Document, 0, len(names))
		for _, name := range names {
			m, err := s.engine.Machine(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to load machine %q: %w", name, err)
			}
			docs = append(docs, schema.FromMachine(m))
		}
		jsonBytes, _ := json.Marshal(docs)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "tendril://machines",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
