package csv

import (
	"encoding/csv"
	"io"

	"github.com/wordforge/wordforge"
)

// WriteReport write a report in csv format to the output writer, one
// candidate per record.
func WriteReport(w io.Writer, data *wordforge.ReportInfo) error {
	out := csv.NewWriter(w)
	defer out.Flush()
	for _, candidate := range data.Candidates {
		if err := out.Write([]string{candidate}); err != nil {
			return err
		}
	}
	return nil
}
