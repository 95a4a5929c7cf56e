package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmartell/iconforge/internal/color"
	"github.com/pmartell/iconforge/internal/icons"
)

func init() {
	rootCmd.Flags().String("dir", ".", "Output directory")
	rootCmd.Flags().String("color", color.DefaultFill.String(), "Fill color (hex RRGGBB or RRGGBBAA)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	colorStr, _ := cmd.Flags().GetString("color")

	fill, err := color.ParseHex(colorStr)
	if err != nil {
		return err
	}

	results, err := icons.Render(dir, fill, icons.DefaultSet)
	for _, r := range results {
		fmt.Printf("Created %s (%dx%d, %d bytes)\n", r.Name, r.Size, r.Size, r.Bytes)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Icons created successfully! (%d files)\n", len(results))
	return nil
}
