// Package csvexport serializes filtered reading tables to CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aquaflow/water-quality-viewer/services/api/db"
	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

// Filename builds the export attachment name, e.g.
// water_quality_data_20260830_154500.csv.
func Filename(t time.Time) string {
	return fmt.Sprintf("water_quality_data_%s.csv", t.Format("20060102_150405"))
}

// Columns returns the exported column names for a parameter selection.
// An empty selection exports every parameter. Column order is fixed:
// timestamp, station, location, parameters in canonical order, status.
func Columns(params []string) []string {
	selected := params
	if len(selected) == 0 {
		selected = quality.Parameters()
	}
	cols := []string{"timestamp", "station", "location"}
	for _, p := range quality.Parameters() {
		for _, sel := range selected {
			if sel == p {
				cols = append(cols, p)
				break
			}
		}
	}
	return append(cols, "status")
}

// Write serializes readings to w as CSV with a header row. Timestamps
// are RFC3339 and numeric values use the shortest round-trip encoding,
// so re-reading the file reproduces the exported rows.
func Write(w io.Writer, readings []db.Reading, params []string) error {
	cw := csv.NewWriter(w)
	cols := Columns(params)

	if err := cw.Write(cols); err != nil {
		return err
	}

	for _, r := range readings {
		record := make([]string, 0, len(cols))
		for _, col := range cols {
			switch col {
			case "timestamp":
				record = append(record, r.Timestamp.UTC().Format(time.RFC3339))
			case "station":
				record = append(record, r.StationName)
			case "location":
				if r.Location != nil {
					record = append(record, *r.Location)
				} else {
					record = append(record, "")
				}
			case "status":
				record = append(record, r.Status)
			default:
				v, _ := r.Value(col)
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
