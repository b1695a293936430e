package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is one raw CSV row keyed by header name, untyped.
type Record map[string]string

// ParseResult carries the parsed rows plus what the parser had to drop.
// Structurally malformed rows are dropped, never repaired.
type ParseResult struct {
	Headers []string
	Records []Record
	Dropped int
}

// Parse reads raw CSV bytes into records. It tolerates real-world files:
// encoding is detected and converted to UTF-8, quoting is lazy, and rows whose
// field count does not match the header are skipped. A missing header row is
// the only fatal condition; a file with a header and no data rows is valid.
func Parse(data []byte) (*ParseResult, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.LazyQuotes = true
	// Field-count mismatches are handled below, row by row.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset has no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	result := &ParseResult{Headers: headers}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Dropped++
			continue
		}
		if len(row) != len(headers) {
			result.Dropped++
			continue
		}

		record := make(Record, len(headers))
		for i, h := range headers {
			record[h] = row[i]
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}
