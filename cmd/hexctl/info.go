package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/dump"
	"github.com/joshuapare/hexkit/pkg/hexedit"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show file size and a head preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	ed := hexedit.New(f)
	length, err := ed.Length()
	if err != nil {
		return err
	}
	head, err := ed.ReadAmountAt(0, 64)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file": path,
			"size": length,
			"head": dump.Rows(head, 0, nil),
		})
	}

	printInfo("file: %s\n", path)
	printInfo("size: %d bytes\n", length)
	if len(head) > 0 {
		printInfo("head:\n%s", dump.String(head, nil))
	}
	return nil
}
