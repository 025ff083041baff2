package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DisplayColumns is the key order of a serialized DisplayRecord.
var DisplayColumns = []string{
	"SKU", "Name", "Price", "Discount", "Discount%", "Cost", "M€", "M%",
	"Voor Sale", "Op BE", "Op NL", "Op COM", "Stock", "MSQ", "UOM", "Ecotax",
	"SUPPLIER_REFERENCE",
}

type DisplayRecord struct {
	SKU               string
	Name              string
	Price             float64
	Discount          float64
	DiscountPct       float64
	Cost              float64
	Margin            float64
	MarginPct         float64
	ForSale           string
	OnBE              string
	OnNL              string
	OnCOM             string
	Stock             float64
	MSQ               float64
	UOM               string
	Ecotax            float64
	SupplierReference string
}

func (d DisplayRecord) values() []interface{} {
	return []interface{}{
		d.SKU, d.Name, d.Price, d.Discount, d.DiscountPct, d.Cost, d.Margin, d.MarginPct,
		d.ForSale, d.OnBE, d.OnNL, d.OnCOM, d.Stock, d.MSQ, d.UOM, d.Ecotax,
		d.SupplierReference,
	}
}

// Strings renders the record in DisplayColumns order for tabular exports.
func (d DisplayRecord) Strings() []string {
	vals := d.values()
	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case string:
			out[i] = x
		case float64:
			out[i] = strconv.FormatFloat(x, 'f', -1, 64)
		}
	}
	return out
}

// MarshalJSON keeps DisplayColumns order; keys such as "M€" cannot be expressed as struct tags.
func (d DisplayRecord) MarshalJSON() ([]byte, error) {
	return marshalOrdered(DisplayColumns, d.values())
}

func (d *DisplayRecord) targets() []interface{} {
	return []interface{}{
		&d.SKU, &d.Name, &d.Price, &d.Discount, &d.DiscountPct, &d.Cost, &d.Margin, &d.MarginPct,
		&d.ForSale, &d.OnBE, &d.OnNL, &d.OnCOM, &d.Stock, &d.MSQ, &d.UOM, &d.Ecotax,
		&d.SupplierReference,
	}
}

func (d *DisplayRecord) UnmarshalJSON(data []byte) error {
	var out DisplayRecord
	if err := unmarshalOrdered(data, DisplayColumns, out.targets()); err != nil {
		return err
	}
	*d = out
	return nil
}

func marshalOrdered(keys []string, values []interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalOrdered(data []byte, keys []string, targets []interface{}) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for i, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}
