package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmartell/iconforge/internal/icons"
)

var fromCmd = &cobra.Command{
	Use:   "from",
	Short: "Derive the icon set from an existing image",
	RunE:  runFrom,
}

func init() {
	fromCmd.Flags().StringP("input", "i", "", "Source image (PNG or JPEG)")
	fromCmd.Flags().String("dir", ".", "Output directory")
	fromCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(fromCmd)
}

func runFrom(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	dir, _ := cmd.Flags().GetString("dir")

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	results, err := icons.RenderFrom(src, dir, icons.DefaultSet)
	for _, r := range results {
		fmt.Printf("Created %s (%dx%d, %d bytes)\n", r.Name, r.Size, r.Size, r.Bytes)
	}
	if err != nil {
		return err
	}

	b := src.Bounds()
	fmt.Printf("Derived %d icons from %s (%dx%d %s)\n", len(results), inputPath, b.Dx(), b.Dy(), format)
	return nil
}
