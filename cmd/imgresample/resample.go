package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rrepka10/imgResample/internal/pipeline"
)

func init() {
	rootCmd.Flags().Int("workers", 0, "Goroutines for the bicubic fill (0 or 1 = sequential)")
}

func runResample(cmd *cobra.Command, args []string) error {
	scaleSpec, inputPath, outputPath := args[0], args[1], args[2]
	workers, _ := cmd.Flags().GetInt("workers")

	// Validate the scale spec before touching any files.
	scale, err := pipeline.ParseScale(scaleSpec)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(inputData, pipeline.Options{
		Scale:   scale,
		Workers: workers,
	})
	if err != nil {
		return err
	}

	if err := writeFileAtomic(outputPath, result.Data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if scale.Half {
		fmt.Println("Using quick 2x downsample")
	}
	fmt.Printf("Resampled %dx%d → %dx%d\n", result.SrcWidth, result.SrcHeight, result.DstWidth, result.DstHeight)
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}

// writeFileAtomic writes data to a temp file in the destination
// directory and renames it over path, so a failure mid-write never
// leaves a partial or stale output file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".imgresample-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
