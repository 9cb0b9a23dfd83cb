package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/dump"
	"github.com/joshuapare/hexkit/edit"
	"github.com/joshuapare/hexkit/pkg/hexedit"
	"github.com/joshuapare/hexkit/store"
)

var (
	patchOutput string
	patchDryRun bool
)

func init() {
	cmd := newPatchCmd()
	cmd.Flags().StringVarP(&patchOutput, "output", "o", "", "Write result to this file instead of in place")
	cmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Show the change without writing anything")
	rootCmd.AddCommand(cmd)
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file> <offset> <hex-bytes>",
		Short: "Replace bytes in place at an offset",
		Long: `The patch command replaces bytes at an offset with the given hex bytes.
The replacement is fixed-length: the file never grows or shrinks, and a
patch that would reach past the end of the file is rejected.

Offsets accept decimal or 0x-prefixed hex. The edit is staged in a
temporary copy; the target file is only touched once the patch applied
cleanly.

Example:
  hexctl patch firmware.bin 0x40 deadbeef
  hexctl patch firmware.bin 64 00ff --output patched.bin
  hexctl patch firmware.bin 0x40 deadbeef --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args)
		},
	}
	return cmd
}

func runPatch(args []string) error {
	path := args[0]

	offset, err := strconv.ParseInt(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}
	data, err := hex.DecodeString(strings.TrimPrefix(args[2], "0x"))
	if err != nil {
		return fmt.Errorf("invalid hex bytes %q: %w", args[2], err)
	}
	if len(data) == 0 {
		return errors.New("empty replacement")
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	tmp, err := store.CopyTemp(src)
	src.Close()
	if err != nil {
		return fmt.Errorf("failed to stage copy: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	ed := hexedit.New(tmp)

	windowStart := offset - 8
	if windowStart < 0 {
		windowStart = 0
	}
	windowLen := len(data) + 16
	before, err := ed.ReadAmountAt(windowStart, windowLen)
	if err != nil {
		return err
	}

	if err := ed.Edit(offset, data, nil); err != nil {
		if errors.Is(err, edit.ErrInvalidEdit) {
			length, lenErr := ed.Length()
			if lenErr == nil {
				return fmt.Errorf(
					"patch of %d byte(s) at %#x would reach past end of file (%d bytes); the file may never grow",
					len(data), offset, length,
				)
			}
		}
		return err
	}

	after, err := ed.ReadAmountAt(windowStart, windowLen)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"offset":  offset,
			"bytes":   hex.EncodeToString(data),
			"dry_run": patchDryRun,
			"before":  dump.Rows(before, windowStart, nil),
			"after":   dump.Rows(after, windowStart, nil),
		})
	}

	if !quiet {
		fmt.Println("before:")
		if err := dump.Write(os.Stdout, before, windowStart, nil); err != nil {
			return err
		}
		fmt.Println("after:")
		if err := dump.Write(os.Stdout, after, windowStart, nil); err != nil {
			return err
		}
	}

	if patchDryRun {
		printInfo("dry run: no files written\n")
		return nil
	}

	target := patchOutput
	if target == "" {
		target = path
	}
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	if _, err := ed.SaveTo(out); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	printInfo("patched %d byte(s) at %#x in %s\n", len(data), offset, target)
	return nil
}
