package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayRecordKeyOrder(t *testing.T) {
	rec := DisplayRecord{SKU: "02067726", Name: "Boormachine", Price: 99.95, Margin: 20.5, ForSale: "Yes", OnBE: "No", OnNL: "No", OnCOM: "Yes", Stock: 4, UOM: "ST"}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	body := string(data)
	last := -1
	for _, col := range DisplayColumns {
		idx := strings.Index(body, `"`+col+`":`)
		require.GreaterOrEqual(t, idx, 0, "missing key %s", col)
		assert.Greater(t, idx, last, "key %s out of order", col)
		last = idx
	}
	assert.Contains(t, body, `"M€":20.5`)
	assert.Contains(t, body, `"Voor Sale":"Yes"`)

	var back DisplayRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)
}

func TestDisplayRecordStrings(t *testing.T) {
	rec := DisplayRecord{SKU: "A", Price: 12.5, Stock: 3, ForSale: "No", OnBE: "No", OnNL: "No", OnCOM: "No"}
	row := rec.Strings()
	require.Len(t, row, len(DisplayColumns))
	assert.Equal(t, "A", row[0])
	assert.Equal(t, "12.5", row[2])
	assert.Equal(t, "3", row[12])
	assert.Equal(t, "", row[16])
}

func TestQuotationLineRoundTrip(t *testing.T) {
	line := QuotationLine{SKU: "A", Amount: 2, Price: 10, Cost: 6, Margin: 4, MarginPct: 0.4, Proposal: 9, ProposalMarginPct: 1.0 / 3}
	data, err := json.Marshal(line)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"SKU":"A","Name":"","SUPPLIER_REFERENCE":"","amount":2`))

	var back QuotationLine
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, line, back)
}
