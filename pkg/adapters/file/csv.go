package file

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tendril/pkg/schema"
)

// Tabular layout of a CSV machine definition. The first seven rows are the
// machine header, everything after is one transition per row.
const (
	rowName = iota
	rowStates
	rowInputAlphabet
	rowTapeAlphabet
	rowStart
	rowAccept
	rowReject
	headerRows
)

const transitionFields = 5

// ParseCSV reads a tabular machine definition: row 1 machine name, row 2
// state list, row 3 input alphabet, row 4 tape alphabet, rows 5-7 the
// start/accept/reject states, and each later row one transition with
// exactly five fields (from, read, to, write, move). Extra fields on a
// transition row are ignored, matching the leniency of the format's
// original consumers; missing rows or short transition rows are malformed.
func ParseCSV(r io.Reader) (*schema.Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // header rows are ragged by design
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &schema.MalformedError{Errors: []error{fmt.Errorf("invalid csv: %w", err)}}
	}
	if len(rows) < headerRows {
		return nil, &schema.MalformedError{Errors: []error{
			fmt.Errorf("definition has %d rows, want at least %d header rows", len(rows), headerRows),
		}}
	}

	d := &schema.Document{
		Name:          rows[rowName][0],
		States:        rows[rowStates],
		InputAlphabet: rows[rowInputAlphabet],
		TapeAlphabet:  rows[rowTapeAlphabet],
		Start:         rows[rowStart][0],
		Accept:        rows[rowAccept][0],
		Reject:        rows[rowReject][0],
	}

	for i, row := range rows[headerRows:] {
		if len(row) < transitionFields {
			return nil, &schema.MalformedError{Errors: []error{
				fmt.Errorf("transition row %d has %d fields, want %d", i+1, len(row), transitionFields),
			}}
		}
		d.Rules = append(d.Rules, schema.Rule{
			From:  row[0],
			Read:  row[1],
			To:    row[2],
			Write: row[3],
			Move:  row[4],
		})
	}

	return d, nil
}

// LoadCSVFile parses the CSV definition at path.
func LoadCSVFile(path string) (*schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()

	d, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}
