package bodyfat

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"
)

// ExportHeader is the fixed column order of an export row.
var ExportHeader = []string{"Date", "Time", "Weight", "BMI", "Fat%"}

// ExportRecord is one exported evaluation.
type ExportRecord struct {
	At             time.Time
	WeightKg       float64
	BMI            float64
	BodyFatPercent float64
}

// NewExportRecord stamps r with the evaluation wall clock.
func NewExportRecord(r Result, weightKg float64, at time.Time) ExportRecord {
	return ExportRecord{At: at, WeightKg: weightKg, BMI: r.BMI, BodyFatPercent: r.BodyFatPercent}
}

// Row renders the record in ExportHeader order.
func (e ExportRecord) Row() []string {
	return []string{
		e.At.Format("02/01/06"),
		e.At.Format("15:04:05"),
		strconv.FormatFloat(e.WeightKg, 'f', 2, 64),
		strconv.FormatFloat(e.BMI, 'f', 2, 64),
		strconv.FormatFloat(e.BodyFatPercent, 'f', 2, 64),
	}
}

// CSV renders the header and the row as comma-delimited text.
func (e ExportRecord) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeader); err != nil {
		return nil, err
	}
	if err := w.Write(e.Row()); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
