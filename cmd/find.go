package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"assetdedup/internal/finder"
	"assetdedup/internal/logging"
	"assetdedup/internal/phash"
	"assetdedup/internal/report"
)

var (
	findDirectory string
	findOutput    string
	findFormat    string
)

var findCmd = &cobra.Command{
	Use:   "find <reference-image>",
	Short: "Find duplicates of a reference image in a directory",
	Long: `Compare every image under a directory against a single reference image.

The search will:
1. Fingerprint the reference image
2. Walk the directory for supported images (jpg, jpeg, png, gif, bmp, webp)
3. Fingerprint each candidate and compare it to the reference
4. Write the accepted matches to the output file

Candidates that cannot be decoded are reported and skipped; they never abort
the run. The output file is always created, even with zero matches.

Example:
  assetdedup find ./reference.jpg
  assetdedup find ./reference.jpg -d ./gallery -o matches.csv --format csv
  assetdedup find ./reference.jpg --threshold 3`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findDirectory, "directory", "d", "", "Directory to scan (defaults to the reference image's directory)")
	findCmd.Flags().StringVarP(&findOutput, "output", "o", "", "Output file path (defaults per format, e.g. duplicate-images.txt)")
	findCmd.Flags().StringVarP(&findFormat, "format", "f", "text", "Output format: text, csv or json")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	refPath := args[0]

	formatter, err := report.ByName(findFormat)
	if err != nil {
		return err
	}

	folder := findDirectory
	if folder == "" {
		folder = filepath.Dir(refPath)
	}
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(absFolder)
	if err != nil {
		return fmt.Errorf("folder not found: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absFolder)
	}

	output := findOutput
	if output == "" {
		output = formatter.DefaultFilename()
	}

	log := logging.New()
	log.Infof("Using reference image: %s", refPath)
	log.Infof("Scanning directory: %s", absFolder)
	log.Infof("Results will be saved to: %s", output)

	f := finder.New(phash.DefaultConfig(), threshold,
		finder.WithWorkers(workers),
		finder.WithProgress(func(processed, total int) {
			log.Infof("Processed %d/%d images...", processed, total)
		}),
	)

	rep, err := f.Run(refPath, absFolder)
	if err != nil {
		return err
	}

	for _, fail := range rep.Failures {
		log.Errorf("error processing %s: %s", fail.Path, fail.Reason)
	}

	log.Infof("")
	log.Infof("--- RESULTS ---")
	if len(rep.Matches) == 0 {
		log.Infof("No duplicate images found matching the reference image.")
	} else {
		log.Infof("Found %d duplicates of the reference image.", len(rep.Matches))
	}

	if err := report.WriteFile(output, formatter, rep); err != nil {
		return err
	}
	log.Infof("Results have been saved to %s", output)
	return nil
}
