package noh

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var fieldColumns = []string{
	"x", "y", "z", "density", "pressure", "sie", "velocity_x", "velocity_y", "velocity_z",
}

func (f *Fields) columns() [][]float64 {
	return [][]float64{
		f.X, f.Y, f.Z, f.Density, f.Pressure, f.SIE, f.VelocityX, f.VelocityY, f.VelocityZ,
	}
}

func (f *Fields) WriteCSV(w io.Writer) error {
	return writeColumns(w, fieldColumns, f.columns())
}

// WriteCSV writes lam and the dimensionless fields, one row per lam.
func (p *Profile) WriteCSV(w io.Writer, lam []float64) error {
	if len(lam) != p.Len() {
		return fmt.Errorf("%w: %d lam values for a profile of %d", ErrShapeMismatch, len(lam), p.Len())
	}
	return writeColumns(w,
		[]string{"lam", "density", "pressure", "sie", "velocity"},
		[][]float64{lam, p.Density, p.Pressure, p.SIE, p.Velocity})
}

func writeColumns(w io.Writer, header []string, cols [][]float64) (err error) {
	var (
		cw  = csv.NewWriter(w)
		row = make([]string, len(cols))
	)
	if err = cw.Write(header); err != nil {
		return
	}
	for i := range cols[0] {
		for j, col := range cols {
			row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err = cw.Write(row); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFieldsCSV reads a table with a header row naming some of the columns
// written by WriteCSV, in any order. Column "x" is required; missing columns
// are zero filled.
func ReadFieldsCSV(r io.Reader) (f *Fields, err error) {
	var (
		records [][]string
		index   = make(map[string]int)
	)
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	if records, err = cr.ReadAll(); err != nil {
		return
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("noh: empty CSV input")
	}
	for j, name := range records[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = j
	}
	if _, ok := index["x"]; !ok {
		return nil, fmt.Errorf("noh: CSV header %v has no x column", records[0])
	}
	rows := records[1:]
	f = NewFields(len(rows))
	for c, col := range f.columns() {
		j, ok := index[fieldColumns[c]]
		if !ok {
			continue
		}
		for i, rec := range rows {
			if col[i], err = strconv.ParseFloat(strings.TrimSpace(rec[j]), 64); err != nil {
				return nil, fmt.Errorf("noh: row %d column %s: %w", i+2, fieldColumns[c], err)
			}
		}
	}
	return
}
