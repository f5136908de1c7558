// Package main provides the resumint CLI: resume tailoring against job
// postings, from analysis through PDF generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumint",
	Short: "Tailor LaTeX resumes to job postings",
	Long:  "resumint scores resume profiles against analyzed job descriptions, assembles and compiles tailored LaTeX resumes, and drives an interactive revision loop over the result.",
}

var (
	flagDataDir string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default ~/.resumint)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print full analyses and debug detail")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
