// internal/trace/reader.go
package trace

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyFile      = errors.New("empty trace file")
	ErrNoTimingColumn = errors.New("no timing column in header")
	ErrNoPositiveSum  = errors.New("no timing column with a positive total")
	ErrNotDir         = errors.New("run path is not a directory")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// scanTrace opens path and calls visit for every CSV record, the header
// being record 0. A blank first line is passed as an empty header rather
// than skipped. visit returns false to stop early. The file is closed on
// every return path.
func scanTrace(path string, visit func(n int, record []string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	n := 0
	if blankLine(br) {
		if !visit(0, nil) {
			return nil
		}
		n = 1
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	for ; ; n++ {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		for i, cell := range record {
			record[i] = strings.ToValidUTF8(cell, "")
		}
		if !visit(n, record) {
			return nil
		}
	}
}

// blankLine reports whether br starts with an empty line. encoding/csv
// drops such lines silently.
func blankLine(br *bufio.Reader) bool {
	head, _ := br.Peek(2)
	switch {
	case len(head) > 0 && head[0] == '\n':
		return true
	case len(head) > 1 && head[0] == '\r' && head[1] == '\n':
		return true
	}
	return false
}
