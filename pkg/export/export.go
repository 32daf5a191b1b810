// Package export serializes production plans for offline use.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/powerplan/core/model"
)

// WriteJSON writes the production plan to w in JSON format.
func WriteJSON(w io.Writer, plan model.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes the production plan to w as CSV with a header row.
func WriteCSV(w io.Writer, plan model.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "power_mw"}); err != nil {
		return err
	}
	for _, pp := range plan {
		rec := []string{
			pp.Name,
			strconv.FormatFloat(pp.Power, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
