package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"calcterm/internal/mcpserver"
	"calcterm/internal/output"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./calc-mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	// Create MCP client
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "calcterm-client",
		Version: "1.0.0",
	}, nil)

	// Connect to the server
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to calculator MCP server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools        - List available tools")
	fmt.Println("  /state        - Show display, theme and history")
	fmt.Println("  /theme <name> - Switch to Light or Dark")
	fmt.Println("  /eval <expr>  - Evaluate without touching the session")
	fmt.Println("  /exit         - Exit the client")
	fmt.Println("  <labels>      - Press space-separated buttons, e.g. 2 + 3 =")
	fmt.Println()

	// Interactive REPL
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case input == "/state":
			callTool(ctx, session, "get_state", map[string]any{})

		case strings.HasPrefix(input, "/theme "):
			callTool(ctx, session, "set_theme", map[string]any{
				"theme": strings.TrimSpace(strings.TrimPrefix(input, "/theme ")),
			})

		case strings.HasPrefix(input, "/eval "):
			callTool(ctx, session, "evaluate_expression", map[string]any{
				"expression": strings.TrimPrefix(input, "/eval "),
			})

		default:
			callTool(ctx, session, "press_sequence", map[string]any{
				"labels": strings.Fields(input),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	if result.IsError {
		for _, content := range result.Content {
			if text, ok := content.(*mcp.TextContent); ok {
				fmt.Println("error:", text.Text)
			}
		}
		return
	}

	if toolName == "evaluate_expression" {
		var res mcpserver.EvaluateResult
		if decode(result, &res) {
			printEvaluation(res)
		}
		return
	}

	var state mcpserver.StateResult
	if decode(result, &state) {
		printState(state)
	}
}

// decode converts the structured tool output into one of the server's result types.
func decode(result *mcp.CallToolResult, v any) bool {
	raw, err := json.Marshal(result.StructuredContent)
	if err == nil {
		err = json.Unmarshal(raw, v)
	}
	if err != nil {
		log.Printf("Unexpected tool output: %v", err)
		return false
	}
	return true
}

func printEvaluation(res mcpserver.EvaluateResult) {
	if res.Error != "" {
		fmt.Printf("error (%s): %s\n", res.Kind, res.Error)
		return
	}
	fmt.Println("=", res.Result)
}

func printState(state mcpserver.StateResult) {
	fmt.Printf("[%s] %s\n", state.Theme, state.Display)
	if !state.ShowHistory {
		return
	}
	if len(state.History) == 0 {
		fmt.Println("  " + output.HistoryPlaceholder)
		return
	}
	for _, line := range state.History {
		fmt.Println("  " + line)
	}
}
