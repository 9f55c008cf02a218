// Package query derives the visible shipment rows from the loaded dataset:
// filter selections, a free-text search and an optional sort.
package query

import (
	"errors"
	"fmt"
	"frete/internal/model"
	"strconv"
)

// ErrUnknownField is returned when a field name is not part of the registry.
var ErrUnknownField = errors.New("unknown shipment field")

// Field enumerates the Shipment fields that can be displayed, sorted or filtered.
type Field string

const (
	FieldID                Field = "id"
	FieldClientID          Field = "clientId"
	FieldClientName        Field = "clientName"
	FieldSegment           Field = "segment"
	FieldBusiness          Field = "business"
	FieldState             Field = "state"
	FieldCity              Field = "city"
	FieldOrderNumber       Field = "orderNumber"
	FieldType              Field = "type"
	FieldStatus            Field = "status"
	FieldInvoiceNumber     Field = "invoiceNumber"
	FieldStatusDescription Field = "statusDescription"
	FieldSuspensionCode    Field = "suspensionCode"
	FieldDescription       Field = "description"
	FieldFreight           Field = "freight"
	FieldDiscount          Field = "discount"
	FieldGrossPrice        Field = "grossPrice"
	FieldNetWeight         Field = "netWeight"
)

// Kind is the value type a field yields.
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a field value read from a shipment. Null is set for the optional
// invoice number when absent.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Null bool
}

// String renders the raw value without display formatting.
func (v Value) String() string {
	if v.Null {
		return ""
	}
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Str
}

type accessor struct {
	kind Kind
	get  func(model.Shipment) Value
}

func str(get func(model.Shipment) string) accessor {
	return accessor{kind: KindString, get: func(s model.Shipment) Value {
		return Value{Kind: KindString, Str: get(s)}
	}}
}

func num(get func(model.Shipment) float64) accessor {
	return accessor{kind: KindNumber, get: func(s model.Shipment) Value {
		return Value{Kind: KindNumber, Num: get(s)}
	}}
}

var registry = map[Field]accessor{
	FieldID:          str(func(s model.Shipment) string { return s.ID }),
	FieldClientID:    str(func(s model.Shipment) string { return s.ClientID }),
	FieldClientName:  str(func(s model.Shipment) string { return s.ClientName }),
	FieldSegment:     str(func(s model.Shipment) string { return s.Segment }),
	FieldBusiness:    str(func(s model.Shipment) string { return s.Business }),
	FieldState:       str(func(s model.Shipment) string { return s.State }),
	FieldCity:        str(func(s model.Shipment) string { return s.City }),
	FieldOrderNumber: str(func(s model.Shipment) string { return s.OrderNumber }),
	FieldType:        str(func(s model.Shipment) string { return s.Type }),
	FieldStatus:      str(func(s model.Shipment) string { return s.Status }),
	FieldInvoiceNumber: {kind: KindString, get: func(s model.Shipment) Value {
		inv, ok := s.Invoice()
		return Value{Kind: KindString, Str: inv, Null: !ok}
	}},
	FieldStatusDescription: str(func(s model.Shipment) string { return s.StatusDescription }),
	FieldSuspensionCode:    str(func(s model.Shipment) string { return s.SuspensionCode }),
	FieldDescription:       str(func(s model.Shipment) string { return s.Description }),
	FieldFreight:           num(func(s model.Shipment) float64 { return s.Freight }),
	FieldDiscount:          num(func(s model.Shipment) float64 { return s.Discount }),
	FieldGrossPrice:        num(func(s model.Shipment) float64 { return s.GrossPrice }),
	FieldNetWeight:         num(func(s model.Shipment) float64 { return s.NetWeight }),
}

// fieldOrder is the declaration order of Shipment, used for listings.
var fieldOrder = []Field{
	FieldID, FieldClientID, FieldClientName, FieldSegment, FieldBusiness,
	FieldState, FieldCity, FieldOrderNumber, FieldType, FieldStatus,
	FieldInvoiceNumber, FieldStatusDescription, FieldSuspensionCode,
	FieldDescription, FieldFreight, FieldDiscount, FieldGrossPrice, FieldNetWeight,
}

// Fields returns every registered field in declaration order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// ParseField validates a field name against the registry.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := registry[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Valid reports whether f is a registered field.
func (f Field) Valid() bool {
	_, ok := registry[f]
	return ok
}

// Kind returns the value type of f.
func (f Field) Kind() (Kind, error) {
	a, ok := registry[f]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return a.kind, nil
}

// Value reads f from s. Unregistered fields yield a null value, which never
// matches a filter and never reorders a sort.
func (f Field) Value(s model.Shipment) Value {
	a, ok := registry[f]
	if !ok {
		return Value{Null: true}
	}
	return a.get(s)
}
