package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rrepka10/imgResample/internal/ppm"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect PPM header info without resampling",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := ppm.Info(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Printf("Max value:   %d\n", info.MaxValue)
	fmt.Printf("Pixel block: %d bytes\n", info.PixelBytes)
	fmt.Printf("File size:   %d bytes\n", len(data))
	if !info.Complete {
		fmt.Println("Warning: pixel block is truncated")
	}

	return nil
}
