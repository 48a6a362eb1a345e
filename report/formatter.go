// Package report renders a generation run in one of the supported output
// formats.
package report

import (
	"io"

	"github.com/wordforge/wordforge"
	"github.com/wordforge/wordforge/report/csv"
	"github.com/wordforge/wordforge/report/json"
	"github.com/wordforge/wordforge/report/text"
	"github.com/wordforge/wordforge/report/yaml"
)

// CreateReport writes the wordlist report in the specified format. The
// formats currently accepted are: json, yaml, csv and text.
func CreateReport(w io.Writer, format string, data *wordforge.ReportInfo) error {
	var err error
	switch format {
	case "json":
		err = json.WriteReport(w, data)
	case "yaml":
		err = yaml.WriteReport(w, data)
	case "csv":
		err = csv.WriteReport(w, data)
	case "text":
		err = text.WriteReport(w, data)
	default:
		err = text.WriteReport(w, data)
	}
	return err
}
