package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"assetdedup/internal/match"
)

var (
	threshold int
	workers   int
)

var rootCmd = &cobra.Command{
	Use:   "assetdedup",
	Short: "Find duplicates of a reference image in an asset gallery",
	Long: `assetdedup matches a single reference image against a directory of assets.

It uses a DCT-based perceptual fingerprint, so duplicates are found even after
resizing, recompression or format conversion. Matches can be written as plain
text, CSV with product/asset identifiers, or a JSON report.

Example usage:
  assetdedup find ./reference.jpg                   # Scan the reference's directory
  assetdedup find ./reference.jpg -d ./gallery      # Scan a gallery folder
  assetdedup find ./reference.jpg --format csv      # Emit Product ID,Asset ID,Filename rows
  assetdedup inspect ./reference.jpg                # Show fingerprint and metadata`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&threshold, "threshold", match.DefaultThreshold, "Hamming distance threshold (matches are strictly below it)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 8, "Number of parallel workers for scanning")
}
