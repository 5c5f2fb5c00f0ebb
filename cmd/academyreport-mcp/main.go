// Command academyreport-mcp is an MCP (Model Context Protocol) server that
// exposes academy report rendering to AI assistants.
//
// # Installation
//
//	go install github.com/HazemIbrahim256/academyreport/cmd/academyreport-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "academyreport": {
//	      "command": "academyreport-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - render_player_report: Render one player's bilingual evaluation report
//   - render_group_report: Render a group summary report
//
// # Available Resources
//
//   - fonts://status : The font resolved for this process
//   - report://metrics : The evaluation categories and rating scale
package main

import (
	"fmt"
	"os"

	"github.com/HazemIbrahim256/academyreport/mcp"
)

func main() {
	server := mcp.NewServer()

	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "academyreport-mcp: %v\n", err)
		os.Exit(1)
	}
}
