package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// logLevelEnv enables debug logging when set to "debug".
const logLevelEnv = "PIXEL_MCP_LOG_LEVEL"

var rootCmd = &cobra.Command{
	Use:   "pixel-mcp",
	Short: "Pixel transformation tools: resize, 3x3 filters and color readouts",
	Long: `pixel-mcp resizes images with nearest-neighbour sampling, applies 3x3
convolution filters and reports colorimetric values and contrast ratios.

Run without a subcommand (or with "serve") to start the MCP server on
stdin/stdout. The other subcommands work on image files directly.

Environment variables:
  PIXEL_MCP_LOG_LEVEL=debug    Enable debug logging`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging to stderr (stdout is for MCP protocol)
		log.SetOutput(os.Stderr)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	},
	RunE: runServe,
}

func debugEnabled() bool {
	return os.Getenv(logLevelEnv) == "debug"
}

// inputOutputFlags reads the --input and --output flags shared by the file
// commands. Both must be set.
func inputOutputFlags(cmd *cobra.Command) (string, string, error) {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	if inputPath == "" || outputPath == "" {
		return "", "", fmt.Errorf("--input and --output are required")
	}
	return inputPath, outputPath, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
