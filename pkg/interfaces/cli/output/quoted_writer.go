package output

import (
	"bufio"
	"io"
	"strings"
)

// quotedWriter writes CSV records with every field quoted. encoding/csv only
// quotes fields that need it.
type quotedWriter struct {
	w *bufio.Writer
}

func newQuotedWriter(w io.Writer) *quotedWriter {
	return &quotedWriter{w: bufio.NewWriter(w)}
}

// Write writes one record terminated by a newline
func (qw *quotedWriter) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := qw.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := qw.w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return qw.w.WriteByte('\n')
}

// Flush writes buffered data to the underlying writer
func (qw *quotedWriter) Flush() error {
	return qw.w.Flush()
}
