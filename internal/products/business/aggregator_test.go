package business

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerte_api/internal/products/models"
)

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(flag(1)))
	assert.Equal(t, "No", YesNo(flag(0)))
	assert.Equal(t, "No", YesNo(sql.NullInt64{}))
	assert.Equal(t, "No", YesNo(flag(2)))
	assert.Equal(t, "No", YesNo(sql.NullInt64{Int64: 1}), "invalid value is NULL")
}

func TestParseSKUs(t *testing.T) {
	cases := []struct {
		raw   string
		width int
		want  []string
	}{
		{"", 0, []string{}},
		{" , ", 0, []string{}},
		{"A, A , B", 0, []string{"A", "B"}},
		{"B,A,B", 0, []string{"B", "A"}},
		{"2067726, 02067726", 8, []string{"02067726"}},
		{"123456789", 8, []string{"123456789"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseSKUs(tc.raw, tc.width), "raw %q", tc.raw)
	}
}

func TestLookupRejectsEmptyInputWithoutQuerying(t *testing.T) {
	for _, raw := range []string{"", " , ", ",,,"} {
		session := &fakeSession{}
		svc := NewProductService(session, 0, nil)

		_, err := svc.Display(context.Background(), raw)
		assert.ErrorIs(t, err, ErrNoSKUs)
		assert.Zero(t, session.opened, "raw %q", raw)
		assert.Zero(t, session.queries, "raw %q", raw)
	}
}

func TestLookupMergesAllSources(t *testing.T) {
	session := &fakeSession{
		products: []models.ProductRow{{
			SKU: "A", SupplierReference: str("SUP-A"), Name: str("Hamer"), Price: num(10),
			Discount: num(1), DiscountPct: num(10), Ecotax: num(0.5), Cost: num(6),
			Margin: num(4), MarginPct: num(40), Active: flag(1), VisibilityBE: flag(1),
			VisibilityNL: flag(0),
		}},
		stocks: []models.StockRow{{SKU: "A", Stock: num(5)}, {SKU: "B", Stock: num(3)}},
		units:  []models.SalesUnitRow{{SKU: "A", SalesQuantity: num(2), UOM: str("ST")}},
	}
	svc := NewProductService(session, 0, nil)

	got, err := svc.Display(context.Background(), "A, B, Z")
	require.NoError(t, err)

	want := []models.DisplayRecord{
		{
			SKU: "A", Name: "Hamer", Price: 10, Discount: 1, DiscountPct: 10, Cost: 6,
			Margin: 4, MarginPct: 40, ForSale: "Yes", OnBE: "Yes", OnNL: "No", OnCOM: "No",
			Stock: 5, MSQ: 2, UOM: "ST", Ecotax: 0.5, SupplierReference: "SUP-A",
		},
		{SKU: "B", ForSale: "No", OnBE: "No", OnNL: "No", OnCOM: "No", Stock: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Display mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, session.queries)
	assert.Equal(t, 1, session.opened)
	assert.Equal(t, 1, session.closed)
}

func TestLookupDuplicatesCollapse(t *testing.T) {
	session := &fakeSession{
		products: []models.ProductRow{{SKU: "A", Price: num(1)}, {SKU: "B", Price: num(2)}},
	}
	got, err := NewProductService(session, 0, nil).Display(context.Background(), "A, A , B")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].SKU)
	assert.Equal(t, "B", got[1].SKU)
}

func TestLookupFailurePropagates(t *testing.T) {
	session := &fakeSession{stockErr: errUnreachable}
	_, err := NewProductService(session, 0, nil).Display(context.Background(), "A")
	assert.ErrorIs(t, err, errUnreachable)
	assert.Equal(t, 2, session.queries, "no further lookups after a failure")
	assert.Equal(t, 1, session.closed)
}

func TestMerge(t *testing.T) {
	t.Run("only SKUs seen in some source appear, once each", func(t *testing.T) {
		records := Merge(
			[]models.ProductRow{{SKU: "A"}},
			[]models.StockRow{{SKU: "A", Stock: num(1)}, {SKU: "B", Stock: num(2)}},
			[]models.SalesUnitRow{{SKU: "C", SalesQuantity: num(3), UOM: str("DS")}, {SKU: "B"}},
		)
		var skus []string
		for _, r := range records {
			skus = append(skus, r.SKU)
		}
		assert.Equal(t, []string{"A", "B", "C"}, skus)

		assert.True(t, records[0].InProducts)
		assert.True(t, records[1].InStock && records[1].InSalesUnits && !records[1].InProducts)
		assert.Equal(t, "DS", records[2].UOM)
		assert.Zero(t, records[2].Stock)
	})

	t.Run("later rows overwrite earlier ones", func(t *testing.T) {
		records := Merge(nil, []models.StockRow{{SKU: "A", Stock: num(1)}, {SKU: "A", Stock: num(7)}}, nil)
		require.Len(t, records, 1)
		assert.Equal(t, 7.0, records[0].Stock)
	})

	t.Run("NULL values default to zero", func(t *testing.T) {
		records := Merge([]models.ProductRow{{SKU: "A"}}, []models.StockRow{{SKU: "A"}}, nil)
		require.Len(t, records, 1)
		d := Project(records[0])
		assert.Equal(t, models.DisplayRecord{SKU: "A", ForSale: "No", OnBE: "No", OnNL: "No", OnCOM: "No"}, d)
	})

	t.Run("nothing found", func(t *testing.T) {
		assert.Empty(t, Merge(nil, nil, nil))
	})
}
