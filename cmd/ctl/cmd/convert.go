package cmd

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpfielding/qoir.go/pkg/qoir"
	"github.com/spf13/cobra"
)

// NewConvertCmd creates the convert cobra command
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between QOIR and PNG/JPEG/GIF",
		Long:  "Encodes a PNG/JPEG/GIF input to QOIR, or decodes a QOIR input to PNG, based on file extensions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")

			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}
			if out == "" {
				base := strings.TrimSuffix(in, filepath.Ext(in))
				if isQOIR(in) {
					out = base + ".png"
				} else {
					out = base + ".qoir"
				}
			}
			return runConvert(ctx, in, out)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input image path (.png/.jpg/.gif/.qoir)")
	pf.StringP("out", "o", "", "output image path (defaults to input with swapped extension)")

	return cmd
}

func isQOIR(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".qoir")
}

func runConvert(ctx context.Context, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	switch {
	case isQOIR(outPath):
		err = qoir.EncodeImage(out, img)
	default:
		err = png.Encode(out, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	slog.InfoContext(ctx, "converted",
		"in", inPath, "in_format", format,
		"out", outPath,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
