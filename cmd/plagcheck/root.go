package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const rootLong = `Score how similar a candidate text is to an original.

A first argument spelled like a subcommand ("config") runs that subcommand;
pass such a file as ./config.`

const usageLine = "usage: plagcheck <original-file> <candidate-file> <output-file>"

// usageError reports a wrong number of positional arguments.
type usageError struct {
	got int
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%s (got %d arguments)", usageLine, e.got)
}

func exactFiles(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return &usageError{got: len(args)}
	}
	return nil
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	var configFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &verbose, stderr)

	rootCmd := &cobra.Command{
		Use:           "plagcheck <original-file> <candidate-file> <output-file>",
		Short:         "Score how similar a candidate text is to an original",
		Long:          rootLong,
		Args:          exactFiles,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	attachCompare(rootCmd, ctx)
	// Subcommand names shadow positional files of the same name.
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
