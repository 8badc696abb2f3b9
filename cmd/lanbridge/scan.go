package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvollmer/lanbridge/internal/transfer"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Enumerate a directory and print the metadata that would be transferred",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := transfer.Scan(cmd.Context(), args[0], cfg.BlockSize)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tFLAGS\tMODIFIED")
		for _, f := range files {
			flags := ""
			if f.ReadOnly() {
				flags += "r"
			}
			if f.Executable() {
				flags += "x"
			}
			modified := "-"
			if ms := f.LastModified(); ms != 0 {
				modified = time.UnixMilli(ms).Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", f.Name(), f.Size(), flags, modified)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
