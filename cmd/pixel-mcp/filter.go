package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixel-tools-mcp/internal/convolve"
	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Apply a 3x3 convolution filter",
	Long: `Apply a 3x3 convolution filter to an image.

Use --preset for a named filter (identity, sharpen, gaussian, box) or
--kernel with nine comma-separated weights in row-major order. Custom
weights are applied as given, without normalization.`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringP("input", "i", "", "Input image file")
	filterCmd.Flags().StringP("output", "o", "", "Output image file (format from extension)")
	filterCmd.Flags().StringP("preset", "p", "", "Named preset")
	filterCmd.Flags().Float64Slice("kernel", nil, "Nine custom kernel weights, row-major")
	filterCmd.Flags().Bool("list", false, "List the presets and exit")
	filterCmd.MarkFlagsMutuallyExclusive("preset", "kernel")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		return printJSON(cmd, convolve.Presets())
	}

	inputPath, outputPath, err := inputOutputFlags(cmd)
	if err != nil {
		return err
	}

	k, err := kernelFromFlags(cmd)
	if err != nil {
		return err
	}

	src, err := imaging.LoadFile(inputPath)
	if err != nil {
		return err
	}
	if debugEnabled() {
		log.Printf("filter %s: %s kernel on %dx%d", inputPath, k.Name, src.Width(), src.Height())
	}

	dst, err := convolve.Apply(src, k)
	if err != nil {
		return fmt.Errorf("filtering: %w", err)
	}
	if err := imaging.Save(dst, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s filter, %dx%d\n", outputPath, k.Name, dst.Width(), dst.Height())
	return nil
}

func kernelFromFlags(cmd *cobra.Command) (convolve.Kernel, error) {
	if cmd.Flags().Changed("kernel") {
		values, err := cmd.Flags().GetFloat64Slice("kernel")
		if err != nil {
			return convolve.Kernel{}, err
		}
		return convolve.KernelFromSlice(values)
	}
	preset, _ := cmd.Flags().GetString("preset")
	if preset == "" {
		return convolve.Kernel{}, fmt.Errorf("--preset or --kernel is required")
	}
	return convolve.PresetByName(preset)
}
