// Package dump renders byte regions as classic hex-editor rows: an offset
// column, hex columns, and a printable column decoded through a charmap.
package dump

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultBytesPerRow is the row width used when Options does not set one.
const DefaultBytesPerRow = 16

// Options controls row rendering. The zero value renders 16 bytes per row
// with lowercase hex and a Windows-1252 printable column.
type Options struct {
	// BytesPerRow is the number of bytes per output row; 0 means
	// DefaultBytesPerRow.
	BytesPerRow int

	// Charset decodes bytes for the printable column. Nil means
	// charmap.Windows1252. charmap.CodePage437 gives the traditional
	// hex-editor look.
	Charset *charmap.Charmap

	// Uppercase renders hex digits in upper case.
	Uppercase bool
}

func (o *Options) bytesPerRow() int {
	if o == nil || o.BytesPerRow <= 0 {
		return DefaultBytesPerRow
	}
	return o.BytesPerRow
}

func (o *Options) charset() *charmap.Charmap {
	if o == nil || o.Charset == nil {
		return charmap.Windows1252
	}
	return o.Charset
}

func (o *Options) hexFormat() string {
	if o != nil && o.Uppercase {
		return "%02X"
	}
	return "%02x"
}

// Row is one rendered line of output.
type Row struct {
	Offset int64  `json:"offset"`
	Hex    string `json:"hex"`
	Text   string `json:"text"`
}

// Rows renders data into rows, labeling the first byte with offset base.
func Rows(data []byte, base int64, opts *Options) []Row {
	width := opts.bytesPerRow()
	cm := opts.charset()
	hexFmt := opts.hexFormat()

	rows := make([]Row, 0, (len(data)+width-1)/width)
	for start := 0; start < len(data); start += width {
		end := start + width
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]

		var hexCol strings.Builder
		var textCol strings.Builder
		for i, b := range chunk {
			if i > 0 {
				hexCol.WriteByte(' ')
				if i%8 == 0 {
					hexCol.WriteByte(' ')
				}
			}
			fmt.Fprintf(&hexCol, hexFmt, b)
			textCol.WriteRune(printable(cm, b))
		}
		rows = append(rows, Row{
			Offset: base + int64(start),
			Hex:    hexCol.String(),
			Text:   textCol.String(),
		})
	}
	return rows
}

// Write renders data to w, one row per line:
//
//	00000010  48 65 6c 6c 6f 2c 20 77  6f 72 6c 64 21 0a 00 ff  |Hello, world!...|
func Write(w io.Writer, data []byte, base int64, opts *Options) error {
	width := opts.bytesPerRow()
	// Full hex column width: two digits per byte, single spaces between,
	// plus one extra space per 8-byte group boundary.
	hexWidth := width*3 - 1 + (width-1)/8
	for _, row := range Rows(data, base, opts) {
		if _, err := fmt.Fprintf(w, "%08x  %-*s  |%s|\n", row.Offset, hexWidth, row.Hex, row.Text); err != nil {
			return err
		}
	}
	return nil
}

// String renders data starting at offset 0 and returns the result.
func String(data []byte, opts *Options) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = Write(&sb, data, 0, opts)
	return sb.String()
}

// printable decodes b through cm and returns the rune for the text column,
// or '.' when the byte has no printable decoding.
func printable(cm *charmap.Charmap, b byte) rune {
	r := cm.DecodeByte(b)
	if r == utf8.RuneError || !unicode.IsPrint(r) || (unicode.IsSpace(r) && r != ' ') {
		return '.'
	}
	return r
}
