package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jpfielding/qoir.go/pkg/qoir"
	"github.com/jpfielding/qoir.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect cobra command
func NewInspectCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a QOIR file header",
		Long:  "Reads only the frame header (no pixel decode) and prints dimensions, format and a content fingerprint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runInspect(filePath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "QOIR file path to inspect")

	return cmd
}

func runInspect(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cfg, err := qoir.DecodePixelConfiguration(raw)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Println("=== Frame ===")
	fmt.Printf("Width: %d\n", cfg.Width)
	fmt.Printf("Height: %d\n", cfg.Height)
	fmt.Printf("Format: %s\n", cfg.Format)
	fmt.Printf("BytesPerPixel: %d\n", cfg.Format.BytesPerPixel())

	raw64 := uint64(cfg.Width) * uint64(cfg.Height) * uint64(cfg.Format.BytesPerPixel())
	fmt.Printf("CompressedSize: %d\n", len(raw))
	fmt.Printf("RawSize: %d\n", raw64)
	if raw64 > 0 {
		fmt.Printf("Ratio: %.3f\n", float64(len(raw))/float64(raw64))
	}

	fmt.Println("=== Fingerprint ===")
	fmt.Printf("MD5: %s\n", util.Md5ThenHex(raw))
	fmt.Printf("UUID: %s\n", util.ContentUUID(raw))
	return nil
}
