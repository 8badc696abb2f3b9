package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvollmer/lanbridge/internal/journal"
	"github.com/nvollmer/lanbridge/internal/service"
)

var noJournal bool

var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Copy a file tree, restoring permission flags and timestamps on every file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := service.NewTransfer(cfg.BlockSize)
		if err != nil {
			return err
		}
		t.SetLogger(log)

		if !noJournal {
			j, err := journal.Open(cfg.GetDataDir())
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()
			t.SetJournal(j)
		}

		result, err := t.Run(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d bytes\n", result.Files, result.Bytes)
		for _, name := range result.MetadataIncomplete {
			fmt.Fprintf(cmd.OutOrStdout(), "metadata incomplete: %s\n", name)
		}
		for _, name := range result.Failed {
			fmt.Fprintf(cmd.OutOrStdout(), "failed: %s\n", name)
		}
		if len(result.Failed) > 0 {
			return fmt.Errorf("%d file(s) failed", len(result.Failed))
		}
		return nil
	},
}

func init() {
	copyCmd.Flags().BoolVar(&noJournal, "no-journal", false, "skip recording outcomes in the journal")
	rootCmd.AddCommand(copyCmd)
}
