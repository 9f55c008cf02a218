package query

import (
	"errors"
	"frete/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortState_Toggle(t *testing.T) {
	var s SortState
	assert.False(t, s.Active)

	s = s.Toggle(FieldGrossPrice)
	assert.Equal(t, SortState{Field: FieldGrossPrice, Dir: Asc, Active: true}, s)

	s = s.Toggle(FieldGrossPrice)
	assert.Equal(t, Desc, s.Dir)

	s = s.Toggle(FieldGrossPrice)
	assert.Equal(t, Asc, s.Dir)

	s = s.Toggle(FieldGrossPrice).Toggle(FieldClientName)
	assert.Equal(t, SortState{Field: FieldClientName, Dir: Asc, Active: true}, s)
}

func TestSort_IsStableAndRepeatable(t *testing.T) {
	all := sampleShipments()
	first := Sort(all, FieldState, Asc)
	second := Sort(first, FieldState, Asc)

	assert.Equal(t, []string{"4", "3", "1", "2", "5"}, ids(first))
	assert.Equal(t, ids(first), ids(second))
}

func TestSort_DescendingKeepsTiesInInputOrder(t *testing.T) {
	got := Sort(sampleShipments(), FieldState, Desc)
	assert.Equal(t, []string{"1", "2", "5", "3", "4"}, ids(got))
}

func TestSort_LocaleAwareStrings(t *testing.T) {
	rows := []model.Shipment{
		{ID: "b", ClientName: "Banco"},
		{ID: "a", ClientName: "Ágil"},
		{ID: "c", ClientName: "agência"},
	}
	got := Sort(rows, FieldClientName, Asc)
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	got := Sort(sampleShipments(), Field("nope"), Asc)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
}

func TestCompare_MismatchedAndNullAreEqual(t *testing.T) {
	c := newCollator()
	assert.Equal(t, 0, Compare(c, Value{Kind: KindString, Str: "a"}, Value{Kind: KindNumber, Num: 1}))
	assert.Equal(t, 0, Compare(c, Value{Kind: KindString, Null: true}, Value{Kind: KindString, Str: "a"}))
	assert.Equal(t, -1, Compare(c, Value{Kind: KindNumber, Num: -50}, Value{Kind: KindNumber, Num: 0}))
	assert.Equal(t, 1, Compare(c, Value{Kind: KindNumber, Num: 3}, Value{Kind: KindNumber, Num: 2}))
}

func TestParseField(t *testing.T) {
	f, err := ParseField("grossPrice")
	require.NoError(t, err)
	kind, err := f.Kind()
	require.NoError(t, err)
	assert.Equal(t, KindNumber, kind)

	_, err = ParseField("gross_price")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestField_ValueInvoiceNull(t *testing.T) {
	s := sampleShipments()[3]
	v := FieldInvoiceNumber.Value(s)
	assert.True(t, v.Null)
	assert.Equal(t, "", v.String())
	assert.Equal(t, "45811", FieldGrossPrice.Value(s).String())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("desc")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	_, err = ParseDirection("down")
	assert.Error(t, err)
}
