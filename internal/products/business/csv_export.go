package business

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"offerte_api/internal/products/models"
)

// CSVContentType matches what WriteDisplayCSV produces.
const CSVContentType = "text/csv; charset=windows-1252"

// WriteDisplayCSV writes records as ';' separated Windows-1252 text, the form spreadsheet
// software in the BE/NL locale opens without an import wizard. Runes outside the code page
// are replaced.
func WriteDisplayCSV(w io.Writer, records []models.DisplayRecord) error {
	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	tw := transform.NewWriter(w, encoder)

	cw := csv.NewWriter(tw)
	cw.Comma = ';'

	if err := cw.Write(models.DisplayColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Strings()); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.SKU, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return tw.Close()
}
