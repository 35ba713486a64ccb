package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"calcterm/internal/config"
)

type check struct {
	name string
	tool string
	args map[string]any
	// field/value pairs expected in the structured result
	want map[string]any
	// set when the tool must report an error
	wantErr bool
}

var checks = []check{
	{"press sequence", "press_sequence", map[string]any{"labels": []string{"2", "+", "3", "*", "4", "="}}, map[string]any{"display": "14"}, false},
	{"result seeds next input", "press_sequence", map[string]any{"labels": []string{"/", "4", "="}}, map[string]any{"display": "3.5"}, false},
	{"division by zero", "press_sequence", map[string]any{"labels": []string{"/", "0", "="}}, map[string]any{"display": "Error"}, false},
	{"error replaced on input", "press_button", map[string]any{"label": "7"}, map[string]any{"display": "7"}, false},
	{"history toggle", "press_button", map[string]any{"label": "H"}, map[string]any{"show_history": true}, false},
	{"theme switch", "set_theme", map[string]any{"theme": "Dark"}, map[string]any{"theme": "Dark", "expression": "7"}, false},
	{"stateless evaluation", "evaluate_expression", map[string]any{"expression": "(1+2)*3"}, map[string]any{"result": "9"}, false},
	{"evaluation failure kind", "evaluate_expression", map[string]any{"expression": "8*"}, map[string]any{"kind": "syntax"}, false},
	{"unknown label rejected", "press_button", map[string]any{"label": "sqrt"}, nil, true},
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println("🧪 Testing calculator MCP server tools")
	fmt.Println("=======================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serverPath := findServerBinary()
	if serverPath == "" {
		log.Fatal("❌ MCP server binary not found. Run: go build -o calc-mcp ./cmd/calc-mcp")
	}
	fmt.Println("✅ Server binary found:", serverPath)

	cmd := exec.Command(serverPath)
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("✅ Connected to MCP server")

	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("❌ Failed to list tools: %v", err)
	}
	fmt.Printf("✅ Found %d tools\n\n", len(listResult.Tools))

	failed := 0
	for _, c := range checks {
		if err := run(ctx, session, c); err != nil {
			failed++
			fmt.Printf("  ❌ %s: %v\n", c.name, err)
			continue
		}
		fmt.Printf("  ✅ %s\n", c.name)
	}

	fmt.Println("\n=======================================")
	if failed > 0 {
		fmt.Printf("❌ %d of %d checks failed\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Println("✅ All MCP tool checks passed!")
	fmt.Println("\n💡 To test interactively, run: go run ./cmd/mcp-client ./calc-mcp")
}

func run(ctx context.Context, session *mcp.ClientSession, c check) error {
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: c.tool, Arguments: c.args})
	if err != nil {
		return err
	}
	if c.wantErr {
		if !res.IsError {
			return fmt.Errorf("expected a tool error")
		}
		return nil
	}
	if res.IsError {
		return fmt.Errorf("unexpected tool error")
	}

	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return err
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		return err
	}
	for k, want := range c.want {
		if got[k] != want {
			return fmt.Errorf("expected %s=%v, got %v", k, want, got[k])
		}
	}
	return nil
}

func findServerBinary() string {
	candidates := []string{
		"./calc-mcp",
		"../../calc-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}
