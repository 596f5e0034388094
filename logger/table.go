package logger

import (
	"bytes"

	"github.com/olekukonko/tablewriter"

	"github.com/Philipp01105/tracelog/core"
)

// VerboseTable logs a rendered ASCII table as one multi-line record at
// INFO severity, gated on the given verbose level. The title goes on
// the prefixed first line; header and rows follow on the lines below
// it. Useful for configuration or status dumps that only make sense as
// a block.
func (l *Logger) VerboseTable(level uint32, title string, header []string, rows [][]string) {
	if !l.VerboseEnabled(level) {
		return
	}

	m := l.message(core.InfoLevel)
	m.Print(title)
	m.Write([]byte{'\n'})
	m.Write(renderTable(header, rows))
	m.Commit()
}

// renderTable renders header and rows into table text without a
// trailing line terminator.
func renderTable(header []string, rows [][]string) []byte {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf)
	table.Header(header)
	table.Bulk(rows)
	table.Render()
	return bytes.TrimRight(buf.Bytes(), "\n")
}
