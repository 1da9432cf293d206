package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"ordered_list/internal/script"
	"ordered_list/list"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	envMaxBytes = "OLIST_MAX_BYTES"
	envVerbose  = "OLIST_VERBOSE"
)

var runCmd = &cobra.Command{
	Use:   "run [op...]",
	Short: "Apply operations such as push-back:1 or pop-at:0 to a fresh list",
	Long: `Apply operations to a fresh list, in order. Operations are
push-front:V push-back:V push-at:I:V pop-front pop-back pop-at:I
replace:I:V clear count get:I index:V destroy`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true

		maxBytes, verbose, err := settings(cmd)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if err := runScript(cmd.OutOrStdout(), args, maxBytes, verbose); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func init() {
	runCmd.Flags().Uint64("max-bytes", 0,
		"limit node memory to this many bytes; 0 means unlimited (env "+envMaxBytes+")")
	runCmd.Flags().BoolP("verbose", "v", false, "log every step as it runs (env "+envVerbose+")")
	rootCmd.AddCommand(runCmd)
}

// settings reads the run flags, falling back to the environment for flags
// that were not given on the command line.
func settings(cmd *cobra.Command) (maxBytes uint64, verbose bool, err error) {
	flags := cmd.Flags()
	if maxBytes, err = flags.GetUint64("max-bytes"); err != nil {
		return 0, false, err
	}
	if !flags.Changed("max-bytes") {
		if maxBytes, err = envUint(envMaxBytes); err != nil {
			return 0, false, err
		}
	}
	if verbose, err = flags.GetBool("verbose"); err != nil {
		return 0, false, err
	}
	if !flags.Changed("verbose") {
		if s := os.Getenv(envVerbose); s != "" {
			if verbose, err = strconv.ParseBool(s); err != nil {
				return 0, false, errors.Wrapf(err, "parse %s", envVerbose)
			}
		}
	}
	return maxBytes, verbose, nil
}

func envUint(name string) (uint64, error) {
	s := strings.TrimSpace(os.Getenv(name))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", name)
	}
	return v, nil
}

func runScript(w io.Writer, tokens []string, maxBytes uint64, verbose bool) error {
	steps, err := script.Parse(tokens)
	if err != nil {
		return err
	}

	var opts []list.Option
	if maxBytes > 0 {
		opts = append(opts, list.WithAllocator(list.NewBudget(uintptr(maxBytes))))
	}
	var logger *log.Logger
	if verbose {
		logger = log.New(os.Stderr, "[olist] ", log.LstdFlags)
	}

	r, err := script.NewRunner(logger, opts...)
	if err != nil {
		return err
	}
	for _, res := range r.Run(steps) {
		fmt.Fprintln(w, res)
	}
	fmt.Fprintf(w, "list: %v\n", r.Contents())
	return nil
}
