// Package mcpserver exposes a calculator session as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"calcterm/internal/calculator"
	"calcterm/internal/engine"
	"calcterm/internal/observability"
	"calcterm/internal/output"
)

// Server wraps the MCP server around one calculator session.
type Server struct {
	mcpServer    *mcp.Server
	historyLimit int

	// Every tool call reads or writes the session under mu.
	mu      sync.Mutex
	session calculator.UIState
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
	HistoryLimit  int
	Theme         calculator.Theme
}

// NewServer creates a new MCP server instance with a fresh session.
func NewServer(cfg Config) *Server {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = calculator.DefaultHistoryLimit
	}

	session := calculator.New()
	session.SetTheme(cfg.Theme)

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer:    mcp.NewServer(impl, nil),
		historyLimit: limit,
		session:      session,
	}
	s.registerTools()
	return s
}

// PressButtonArgs defines the input for the press_button tool.
type PressButtonArgs struct {
	Label string `json:"label" jsonschema:"a keypad label: 0-9 . + - * / C ⌫ H = or the glyphs ➕ ➖ ✖️ ➗"`
}

// PressSequenceArgs defines the input for the press_sequence tool.
type PressSequenceArgs struct {
	Labels []string `json:"labels" jsonschema:"keypad labels pressed in order"`
}

// EvaluateArgs defines the input for the evaluate_expression tool.
type EvaluateArgs struct {
	Expression string `json:"expression" jsonschema:"arithmetic expression using + - * / parentheses and decimals"`
}

// EvaluateResult is the outcome of a stateless evaluation.
type EvaluateResult struct {
	Result string `json:"result,omitempty" jsonschema:"formatted result"`
	Error  string `json:"error,omitempty" jsonschema:"why evaluation failed"`
	Kind   string `json:"kind,omitempty" jsonschema:"failure kind: empty, syntax, division_by_zero or overflow"`
}

// SetThemeArgs defines the input for the set_theme tool.
type SetThemeArgs struct {
	Theme string `json:"theme" jsonschema:"Light or Dark"`
}

// StateArgs is the empty input of get_state.
type StateArgs struct{}

// StateResult is a snapshot of the session as a user would see it.
type StateResult struct {
	Display     string   `json:"display" jsonschema:"what the display shows"`
	Expression  string   `json:"expression" jsonschema:"the raw expression string"`
	ShowHistory bool     `json:"show_history" jsonschema:"whether the history panel is open"`
	Theme       string   `json:"theme" jsonschema:"Light or Dark"`
	History     []string `json:"history" jsonschema:"recent evaluations, most recent first"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "press_button",
		Description: "Press one calculator button and return the resulting state. ASCII operators are accepted in place of the keypad glyphs.",
	}, s.handlePressButton)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "press_sequence",
		Description: "Press several calculator buttons in order and return the final state. Labels are validated before any is pressed.",
	}, s.handlePressSequence)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "evaluate_expression",
		Description: "Evaluate an arithmetic expression without touching the session. Returns the formatted result or the failure kind.",
	}, s.handleEvaluate)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_state",
		Description: "Return the current display, expression, theme and recent history.",
	}, s.handleGetState)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_theme",
		Description: "Switch the session theme to Light or Dark. Nothing else changes.",
	}, s.handleSetTheme)
}

func (s *Server) handlePressButton(ctx context.Context, _ *mcp.CallToolRequest, args PressButtonArgs) (*mcp.CallToolResult, StateResult, error) {
	label, err := calculator.ParseLabel(args.Label)
	if err != nil {
		return nil, StateResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.HandleInput(label)
	return nil, s.snapshot(), nil
}

func (s *Server) handlePressSequence(ctx context.Context, _ *mcp.CallToolRequest, args PressSequenceArgs) (*mcp.CallToolResult, StateResult, error) {
	labels := make([]calculator.ButtonLabel, 0, len(args.Labels))
	for i, raw := range args.Labels {
		label, err := calculator.ParseLabel(raw)
		if err != nil {
			return nil, StateResult{}, fmt.Errorf("labels[%d]: %w", i, err)
		}
		labels = append(labels, label)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, label := range labels {
		s.session.HandleInput(label)
	}
	observability.Logger.Debug("sequence pressed", zap.Int("count", len(labels)))
	return nil, s.snapshot(), nil
}

func (s *Server) handleEvaluate(ctx context.Context, _ *mcp.CallToolRequest, args EvaluateArgs) (*mcp.CallToolResult, EvaluateResult, error) {
	v, err := engine.Evaluate(args.Expression)
	if err != nil {
		res := EvaluateResult{Error: err.Error()}
		var evalErr *engine.EvaluationError
		if errors.As(err, &evalErr) {
			res.Kind = string(evalErr.Kind)
		}
		return nil, res, nil
	}
	return nil, EvaluateResult{Result: engine.FormatResult(v)}, nil
}

func (s *Server) handleGetState(ctx context.Context, _ *mcp.CallToolRequest, _ StateArgs) (*mcp.CallToolResult, StateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, s.snapshot(), nil
}

func (s *Server) handleSetTheme(ctx context.Context, _ *mcp.CallToolRequest, args SetThemeArgs) (*mcp.CallToolResult, StateResult, error) {
	theme, err := calculator.ParseTheme(args.Theme)
	if err != nil {
		return nil, StateResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.SetTheme(theme)
	observability.Logger.Debug("theme set", zap.Stringer("theme", theme))
	return nil, s.snapshot(), nil
}

// snapshot must be called with mu held.
func (s *Server) snapshot() StateResult {
	view := output.BuildScreen(s.session, s.historyLimit)

	var history []string
	for _, e := range s.session.Recent(s.historyLimit) {
		history = append(history, e.String())
	}
	if history == nil {
		history = []string{}
	}

	return StateResult{
		Display:     view.Display,
		Expression:  s.session.Expression,
		ShowHistory: s.session.ShowHistory,
		Theme:       s.session.Theme.String(),
		History:     history,
	}
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Starting calculator MCP server on stdio...\n")
	observability.Logger.Info("mcp server starting",
		zap.String("transport", "stdio"),
		zap.Int("history_limit", s.historyLimit),
	)
	transport := &mcp.StdioTransport{}
	err := s.mcpServer.Run(ctx, transport)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
