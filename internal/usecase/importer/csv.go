package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Row is one record derived from a CSV line, keyed by column header.
type Row map[string]string

// Parse reads a CSV document with a header row and returns one Row per data
// record. It understands quoted fields, embedded commas and embedded
// newlines. Records shorter than the header get empty strings for the
// missing columns; extra values beyond the header count are dropped.
// Header-only or empty input yields no rows.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := []Row{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(rec) {
			continue
		}

		row := make(Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseLegacy reproduces the splitter older supplier feeds were built
// against: lines split on newlines, fields split on every comma, double
// quotes stripped. Quoted commas and embedded newlines corrupt column
// alignment exactly as they always did. Only use it for feeds that depend on
// that behavior; Parse is the default.
func ParseLegacy(raw string) []Row {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return []Row{}
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.ReplaceAll(headers[i], `"`, ""))
	}

	rows := []Row{}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = strings.ReplaceAll(values[i], `"`, "")
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
