package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"assetdedup/internal/phash"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <image>",
	Short: "Print the fingerprint and metadata of an image",
	Long: `Decode a single image and print its perceptual fingerprint together with
dimensions, format, file size and EXIF presence.

Useful for checking why two assets do or do not match:
  assetdedup inspect ./reference.jpg
  assetdedup inspect ./gallery/SKU123_frontview.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	h := phash.NewHasher(phash.DefaultConfig())
	info, err := h.Inspect(args[0])
	if err != nil {
		return err
	}

	cfg := h.Config()
	fmt.Printf("Fingerprint: %s\n", info.Fingerprint)
	fmt.Printf("Bits:        %d (grid %dx%d, block %dx%d)\n",
		info.Fingerprint.BitLength(), cfg.GridSize, cfg.GridSize, cfg.BlockSize, cfg.BlockSize)
	fmt.Printf("Dimensions:  %dx%d\n", info.Width, info.Height)
	fmt.Printf("Format:      %s\n", info.Format)
	fmt.Printf("File size:   %d bytes\n", info.FileSize)
	fmt.Printf("EXIF:        %v\n", info.HasExif)
	return nil
}
