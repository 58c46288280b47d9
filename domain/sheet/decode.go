package sheet

import (
	"reflect"
	"strconv"
	"strings"

	"explorergen/internal/errors"
)

// Number is a numeric cell that may be blank.
type Number struct {
	Value float64
	Valid bool
}

var numberType = reflect.TypeOf(Number{})

type fieldSpec struct {
	index    int
	column   string
	optional bool
}

// Decode maps every record of s onto a T. Fields are bound with
// `sheet:"column"` tags; `sheet:"column,optional"` tolerates an absent
// column. Supported field types are string, int, float64 and Number.
func Decode[T any](s *Sheet) ([]T, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, errors.InternalError("sheet.Decode needs a struct type, got " + rt.String())
	}

	var specs []fieldSpec
	var required []string
	for i := 0; i < rt.NumField(); i++ {
		tag, ok := rt.Field(i).Tag.Lookup("sheet")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		spec := fieldSpec{index: i, column: name, optional: opts == "optional"}
		if !spec.optional {
			required = append(required, name)
		}
		specs = append(specs, spec)
	}
	if err := s.Require(required...); err != nil {
		return nil, err
	}

	out := make([]T, len(s.Records))
	for r, rec := range s.Records {
		v := reflect.ValueOf(&out[r]).Elem()
		for _, spec := range specs {
			raw, ok := rec[spec.column]
			if !ok {
				continue
			}
			if err := assign(v.Field(spec.index), raw); err != nil {
				return nil, errors.Wrapf(errors.WithCode(errors.CodeMalformedSheet, err),
					"sheet %q row %d column %q", s.Ref.Name, r+2, spec.column)
			}
		}
	}
	return out, nil
}

func assign(f reflect.Value, raw string) error {
	if f.Type() == numberType {
		if raw == "" {
			return nil
		}
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		f.Set(reflect.ValueOf(Number{Value: x, Valid: true}))
		return nil
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Int, reflect.Int64:
		if raw == "" {
			return nil
		}
		// Sheets exported as floats carry a trailing ".0".
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		f.SetInt(int64(x))
	case reflect.Float64:
		if raw == "" {
			return nil
		}
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		f.SetFloat(x)
	default:
		return errors.InternalError("unsupported field type " + f.Type().String())
	}
	return nil
}
