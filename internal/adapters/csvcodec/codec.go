// Package csvcodec reads and writes named points as headerless CSV with
// the fixed column order x,y,name.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wasi-apps/internal/domain"
)

const fieldsPerRecord = 3

var ErrParse = errors.New("parse error")

// ParseError reports a malformed record. Line is 1-based; Column names the
// offending field when one is known.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("csv line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("csv line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Encode writes one x,y,name record per point. Floats use the shortest
// representation that parses back to the same value.
//
// A CSV reader folds "\r\n" inside a quoted field into "\n", so names
// containing it are rejected before anything is written.
func Encode(w io.Writer, points []domain.NamedPoint) error {
	for i, p := range points {
		if strings.Contains(p.Name, "\r\n") {
			return fmt.Errorf("encode csv: record %d: %w: name %q contains CRLF", i+1, domain.ErrInvalidArgument, p.Name)
		}
	}

	cw := csv.NewWriter(w)

	for i, p := range points {
		record := []string{formatFloat(p.X), formatFloat(p.Y), p.Name}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("encode csv: record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode csv: flush: %w", err)
	}

	return nil
}

// Decode parses every record of r. It fails on the first record with a
// wrong field count or a non-numeric coordinate.
func Decode(r io.Reader) ([]domain.NamedPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldsPerRecord
	cr.ReuseRecord = true

	points := make([]domain.NamedPoint, 0, 64)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.StartLine, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("decode csv: read: %w", err)
		}

		line, _ := cr.FieldPos(0)

		x, err := parseFloat(record[0])
		if err != nil {
			return nil, &ParseError{Line: line, Column: "x", Err: err}
		}
		y, err := parseFloat(record[1])
		if err != nil {
			return nil, &ParseError{Line: line, Column: "y", Err: err}
		}

		points = append(points, domain.NewNamedPoint(x, y, record[2]))
	}

	return points, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, fmt.Errorf("%q: %w", s, numErr.Err)
		}
		return 0, err
	}
	return v, nil
}
