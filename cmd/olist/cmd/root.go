// Package cmd provides the command-line interface for olist.
package cmd

import (
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "olist",
	Short: "olist runs scripted operations against an ordered list.",
	Long: `olist runs scripted operations against an ordered list of int64 values ` +
		`and prints the result of every step, including the error code of steps ` +
		`that fail. Defaults for flags may be set in the environment or a .env file.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := loadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadEnv loads environment defaults from the given files, or from .env when
// none are given. Missing files are not an error.
func loadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Wrap(err, "load environment file")
}
