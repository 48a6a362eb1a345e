package text

import (
	"bufio"
	"io"

	"github.com/wordforge/wordforge"
)

// WriteReport writes the candidates one per line in ascending order, with
// no surrounding metadata. This is the flat export format consumed by
// cracking and audit tools.
func WriteReport(w io.Writer, data *wordforge.ReportInfo) error {
	buffered := bufio.NewWriter(w)
	for _, candidate := range data.Candidates {
		if _, err := buffered.WriteString(candidate); err != nil {
			return err
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buffered.Flush()
}
