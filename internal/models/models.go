package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Column names recognized by the loader.
const (
	FieldSpecies         = "species"
	FieldIsland          = "island"
	FieldBillLengthMM    = "bill_length_mm"
	FieldBillDepthMM     = "bill_depth_mm"
	FieldFlipperLengthMM = "flipper_length_mm"
	FieldBodyMassG       = "body_mass_g"
	FieldSex             = "sex"
	FieldYear            = "year"
)

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprint(o.value)
}

// Record is a single penguin row. Numeric measurements are absent unless the
// source cell was present and parsed.
type Record struct {
	Species         string
	Island          string
	BillLengthMM    Optional[float64]
	BillDepthMM     Optional[float64]
	FlipperLengthMM Optional[int64]
	BodyMassG       Optional[int64]
	Sex             string
	Year            string
	CheckSum        string

	header []string
	raw    map[string]string
}

// NewRecord builds a record that remembers the raw cell of every header column.
// The header order is kept for printing.
func NewRecord(header []string, raw map[string]string) Record {
	h := make([]string, len(header))
	copy(h, header)
	cells := make(map[string]string, len(raw))
	for k, v := range raw {
		cells[k] = v
	}
	return Record{header: h, raw: cells}
}

// FieldNames returns the header columns this record was loaded with, sorted.
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r.raw))
	for name := range r.raw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the raw source cell for a column.
func (r Record) Field(name string) (string, bool) {
	v, ok := r.raw[name]
	return v, ok
}

// String renders the record in header order with typed values for the
// numeric columns, e.g. {'': '1', 'species': 'Adelie', 'body_mass_g': 3750, ...}.
func (r Record) String() string {
	parts := make([]string, 0, len(r.header))
	for _, name := range r.header {
		parts = append(parts, fmt.Sprintf("%s: %s", strconv.Quote(name), r.renderField(name)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (r Record) renderField(name string) string {
	switch name {
	case FieldBillLengthMM:
		return r.BillLengthMM.String()
	case FieldBillDepthMM:
		return r.BillDepthMM.String()
	case FieldFlipperLengthMM:
		return r.FlipperLengthMM.String()
	case FieldBodyMassG:
		return r.BodyMassG.String()
	}
	return strconv.Quote(r.raw[name])
}

// Dataset is the result of one load. CheckSum covers the exact bytes parsed.
type Dataset struct {
	Path     string
	CheckSum string
	Records  []Record
}

type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
