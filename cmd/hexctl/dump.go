package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/hexkit/dump"
	"github.com/joshuapare/hexkit/view"
)

var (
	dumpOffset    int64
	dumpLength    int64
	dumpWidth     int
	dumpCP437     bool
	dumpUppercase bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Int64Var(&dumpOffset, "offset", 0, "Start offset in bytes")
	cmd.Flags().Int64Var(&dumpLength, "length", 0, "Number of bytes to dump (0 = to end of file)")
	cmd.Flags().IntVar(&dumpWidth, "width", 0, "Bytes per row (0 = configured default)")
	cmd.Flags().BoolVar(&dumpCP437, "cp437", false, "Decode the text column as code page 437")
	cmd.Flags().BoolVar(&dumpUppercase, "upper", false, "Uppercase hex digits")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump of a file region",
		Long: `The dump command renders a region of a file as hex-editor rows:
offset, hex bytes, and a printable column.

Example:
  hexctl dump firmware.bin
  hexctl dump firmware.bin --offset 0x0 --length 256
  hexctl dump firmware.bin --width 8 --cp437
  hexctl dump firmware.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	size := info.Size()
	if dumpOffset < 0 {
		return fmt.Errorf("negative offset %d", dumpOffset)
	}
	if dumpOffset >= size {
		printVerbose("Offset %#x is at or past end of file (%d bytes)\n", dumpOffset, size)
		if jsonOut {
			return printJSON(map[string]interface{}{
				"file":   path,
				"offset": dumpOffset,
				"length": 0,
				"rows":   []dump.Row{},
			})
		}
		return nil
	}

	end := size
	if dumpLength > 0 && dumpOffset+dumpLength < size {
		end = dumpOffset + dumpLength
	}
	printVerbose("Dumping %s [%#x, %#x)\n", path, dumpOffset, end)

	// The view clamps the read to the requested window, including windows
	// that overshoot the file.
	v, err := view.New(f, view.NewRange(dumpOffset, end))
	if err != nil {
		return err
	}
	if _, err := v.Seek(0, io.SeekStart); err != nil {
		return err
	}
	data, err := io.ReadAll(v)
	if err != nil {
		return fmt.Errorf("failed to read region: %w", err)
	}

	width := dumpWidth
	if width <= 0 {
		width = cfg.Width
	}
	charset := charmap.Windows1252
	if dumpCP437 || cfg.Charset == "cp437" {
		charset = charmap.CodePage437
	}
	rows := dump.Rows(data, dumpOffset, &dump.Options{
		BytesPerRow: width,
		Charset:     charset,
		Uppercase:   dumpUppercase,
	})

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"offset": dumpOffset,
			"length": len(data),
			"rows":   rows,
		})
	}

	color := cfg.Color && !noColor
	fmt.Print(renderRows(rows, width, color))
	return nil
}
