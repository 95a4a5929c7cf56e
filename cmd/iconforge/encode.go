package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmartell/iconforge/internal/color"
	"github.com/pmartell/iconforge/internal/png"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a single solid-color PNG",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().IntP("size", "s", 0, "Square size in pixels")
	encodeCmd.Flags().String("color", color.DefaultFill.String(), "Fill color (hex RRGGBB or RRGGBBAA)")
	encodeCmd.Flags().StringP("output", "o", "", "Output PNG file")
	encodeCmd.MarkFlagRequired("size")
	encodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	colorStr, _ := cmd.Flags().GetString("color")
	outputPath, _ := cmd.Flags().GetString("output")

	fill, err := color.ParseHex(colorStr)
	if err != nil {
		return err
	}

	data, err := png.EncodeSolid(size, fill)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Encoded %dx%d %s → %s (%d bytes)\n", size, size, fill, outputPath, len(data))
	return nil
}
