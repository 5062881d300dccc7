// Package sse consumes server-sent-event response bodies: a reader that
// yields one record per event, and a parser that turns records into timing
// events and accumulated content.
package sse

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

const (
	initialBufSize = 64 * 1024
	maxRecordSize  = 4 * 1024 * 1024
)

// RecordReader splits an SSE body into records. Records are separated by a
// blank line; each "data:" line is stripped of its prefix and multi-line
// records are joined with newlines. Comment lines (leading ':') are dropped.
type RecordReader struct {
	scanner *bufio.Scanner
}

func NewRecordReader(r io.Reader) *RecordReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialBufSize), maxRecordSize)
	sc.Split(splitRecords)
	return &RecordReader{scanner: sc}
}

// Next returns the next record, or io.EOF at end of stream.
func (rr *RecordReader) Next() (string, error) {
	for rr.scanner.Scan() {
		rec := joinDataLines(rr.scanner.Text())
		if rec == "" {
			continue
		}
		return rec, nil
	}
	if err := rr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// splitRecords is a bufio.SplitFunc yielding the text between blank lines,
// accepting both LF and CRLF line endings.
func splitRecords(data []byte, atEOF bool) (int, []byte, error) {
	sep, sepLen := -1, 0
	if i := bytes.Index(data, []byte("\r\n\r\n")); i >= 0 {
		sep, sepLen = i, 4
	}
	if i := bytes.Index(data, []byte("\n\n")); i >= 0 && (sep < 0 || i < sep) {
		sep, sepLen = i, 2
	}
	if sep >= 0 {
		return sep + sepLen, data[:sep], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func joinDataLines(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "data:"); ok {
			line = strings.TrimPrefix(rest, " ")
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}
