package common

import (
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
)

// Decode pulls ref out of set and decodes its rows into T.
func Decode[T any](set sheet.Set, ref sheet.Ref) ([]T, error) {
	s, err := set.Get(ref)
	if err != nil {
		return nil, err
	}
	rows, err := sheet.Decode[T](s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", ref.Name)
	}
	return rows, nil
}
