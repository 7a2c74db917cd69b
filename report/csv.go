package report

import (
	"encoding/csv"
	"io"

	"github.com/tsawler/labscan/model"
)

// WriteCSV writes one row per result under a parameter,value,unit,range
// header.
func WriteCSV(w io.Writer, results []model.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"parameter", "value", "unit", "range"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Parameter, r.Value, r.Unit, r.Range}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
