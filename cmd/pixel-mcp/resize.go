package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
	"github.com/ironsheep/pixel-tools-mcp/internal/resample"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize an image with nearest-neighbour sampling",
	Args:  cobra.NoArgs,
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().StringP("input", "i", "", "Input image file")
	resizeCmd.Flags().StringP("output", "o", "", "Output image file (format from extension)")
	resizeCmd.Flags().Int("width", 0, "Target width in pixels")
	resizeCmd.Flags().Int("height", 0, "Target height in pixels")
	resizeCmd.Flags().Int("width-percent", 0, "Target width as a percentage of the source")
	resizeCmd.Flags().Int("height-percent", 0, "Target height as a percentage of the source")
	resizeCmd.Flags().Bool("keep-aspect", false, "Derive the missing axis from the source aspect ratio")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, outputPath, err := inputOutputFlags(cmd)
	if err != nil {
		return err
	}

	var target resample.Target
	target.Width, _ = cmd.Flags().GetInt("width")
	target.Height, _ = cmd.Flags().GetInt("height")
	target.WidthPercent, _ = cmd.Flags().GetInt("width-percent")
	target.HeightPercent, _ = cmd.Flags().GetInt("height-percent")
	target.KeepAspect, _ = cmd.Flags().GetBool("keep-aspect")

	src, err := imaging.LoadFile(inputPath)
	if err != nil {
		return err
	}

	dst, err := resample.ResizeTo(src, target)
	if err != nil {
		return fmt.Errorf("resizing: %w", err)
	}
	if debugEnabled() {
		log.Printf("resize %s: %dx%d -> %dx%d", inputPath, src.Width(), src.Height(), dst.Width(), dst.Height())
	}

	if err := imaging.Save(dst, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d -> %dx%d\n", outputPath, src.Width(), src.Height(), dst.Width(), dst.Height())
	return nil
}
