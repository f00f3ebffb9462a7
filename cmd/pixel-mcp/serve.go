package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixel-tools-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Run the MCP server on stdin/stdout.

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	debug := debugEnabled()
	if debug {
		log.Printf("Pixel MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.WithVersion(Version), server.WithDebug(debug))
	if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		log.Printf("Server error: %v", err)
		return err
	}
	return nil
}
