package business

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"offerte_api/internal/products/models"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	quotationSheet  = "Offerte"
	headerRow       = 3
)

var quotationHeader = []string{
	"SKU", "Aantal", "SupRef", "Naam", "Prijs (€)", "Korting (€)", "Korting (%)",
	"Kost (€)", "Marge (€)", "Marge (%)", "Proposal (€)", "M%P",
}

var quotationColWidths = []float64{10, 7, 20, 50, 12, 12, 11, 12, 12, 11, 14, 8}

// WriteQuotationXLSX renders q as a single-sheet workbook: title, header, one row per
// line and a totals block below.
func WriteQuotationXLSX(w io.Writer, q *models.Quotation, title string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quotationSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newQuotationStyles(f)
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(quotationHeader))
	if err := f.SetCellValue(quotationSheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(quotationSheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(quotationSheet, "A1", "A1", styles.title); err != nil {
		return err
	}

	if err := setRow(f, headerRow, toAny(quotationHeader)); err != nil {
		return err
	}
	if err := f.SetCellStyle(quotationSheet, "A3", fmt.Sprintf("%s%d", lastCol, headerRow), styles.header); err != nil {
		return err
	}

	row := headerRow + 1
	for _, l := range q.Lines {
		values := []interface{}{
			l.SKU, l.Amount, l.SupplierReference, l.Name, l.Price, l.Discount, l.DiscountPct,
			l.Cost, l.Margin, l.MarginPct, l.Proposal, l.ProposalMarginPct,
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
		style := styles.rowEven
		if row%2 == 1 {
			style = styles.rowOdd
		}
		if err := f.SetCellStyle(quotationSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), style); err != nil {
			return err
		}
		row++
	}

	row++
	if err := setRow(f, row, []interface{}{"Totalen"}); err != nil {
		return err
	}
	row++
	t := q.Totals
	totals := []struct {
		label string
		value float64
		style int
	}{
		{"Current Price", t.CurrentPrice, styles.euro},
		{"New Price", t.NewPrice, styles.euro},
		{"Current Margin %", t.CurrentMarginPct, styles.pct},
		{"New Margin %", t.NewMarginPct, styles.pct},
		{"Current Profit", t.CurrentProfit, styles.euro},
		{"New Profit", t.NewProfit, styles.euro},
		{"CDC", t.CDC, styles.euro},
		{"€ Discount", t.DiscountEuro, styles.euro},
		{"% Discount", t.DiscountPct, styles.pct},
	}
	for _, tr := range totals {
		if err := setRow(f, row, []interface{}{tr.label, tr.value}); err != nil {
			return err
		}
		if err := f.SetCellStyle(quotationSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.totalLabel); err != nil {
			return err
		}
		if err := f.SetCellStyle(quotationSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), tr.style); err != nil {
			return err
		}
		row++
	}

	for i, width := range quotationColWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(quotationSheet, col, col, width); err != nil {
			return err
		}
	}
	if err := f.SetPanes(quotationSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type quotationStyles struct {
	title, header, rowEven, rowOdd, totalLabel, euro, pct int
}

func newQuotationStyles(f *excelize.File) (quotationStyles, error) {
	var s quotationStyles
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	top := []excelize.Border{{Type: "top", Color: "000000", Style: 2}}
	euroFmt := "€ #,##0.00"
	pctFmt := "0.00%"

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 18},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"EAEAEA"}, Pattern: 1},
			Border:    append([]excelize.Border{{Type: "top", Color: "000000", Style: 1}}, thin...),
		}},
		{&s.rowEven, &excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFFFFF"}, Pattern: 1},
			Border: thin,
		}},
		{&s.rowOdd, &excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"F7F7F7"}, Pattern: 1},
			Border: thin,
		}},
		{&s.totalLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "right"},
			Border:    top,
		}},
		{&s.euro, &excelize.Style{
			Font:         &excelize.Font{Bold: true},
			Alignment:    &excelize.Alignment{Horizontal: "right"},
			Border:       top,
			CustomNumFmt: &euroFmt,
		}},
		{&s.pct, &excelize.Style{
			Font:         &excelize.Font{Bold: true},
			Alignment:    &excelize.Alignment{Horizontal: "right"},
			Border:       top,
			CustomNumFmt: &pctFmt,
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(quotationSheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
