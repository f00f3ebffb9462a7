package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixel-tools-mcp/internal/colorconv"
	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
)

var colorCmd = &cobra.Command{
	Use:   "color [COLOR]",
	Short: "Print the readout for a color or an image pixel",
	Long: `Print hex, RGB, HSL, CIE XYZ, CIE Lab, luminance and brightness.

The color is given as "#RRGGBB", "#RGB" or "r,g,b". With --input, the
pixel at --x/--y of the image is read instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runColor,
}

var contrastCmd = &cobra.Command{
	Use:   "contrast FOREGROUND BACKGROUND",
	Short: "Print the contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

func init() {
	colorCmd.Flags().StringP("input", "i", "", "Image file to sample")
	colorCmd.Flags().Int("x", 0, "X coordinate (0-based, from left)")
	colorCmd.Flags().Int("y", 0, "Y coordinate (0-based, from top)")
	rootCmd.AddCommand(colorCmd)

	contrastCmd.Flags().Bool("check", false, "Fail if the ratio is below 4.5")
	rootCmd.AddCommand(contrastCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	if inputPath != "" {
		if len(args) != 0 {
			return fmt.Errorf("give either a color or --input, not both")
		}
		x, _ := cmd.Flags().GetInt("x")
		y, _ := cmd.Flags().GetInt("y")

		buf, err := imaging.LoadFile(inputPath)
		if err != nil {
			return err
		}
		result, err := imaging.SampleColor(buf, x, y)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	}

	if len(args) != 1 {
		return fmt.Errorf("a color or --input is required")
	}
	sample, err := colorconv.ParseSample(args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, colorconv.Describe(sample))
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := colorconv.ParseSample(args[0])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := colorconv.ParseSample(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	result := imaging.CompareSamples(fg, bg)
	if err := printJSON(cmd, result); err != nil {
		return err
	}

	if check, _ := cmd.Flags().GetBool("check"); check && !result.Result.MeetsThreshold {
		return fmt.Errorf("contrast ratio %s is below %.1f", result.Result.Formatted, colorconv.ContrastThreshold)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
