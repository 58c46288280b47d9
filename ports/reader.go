package ports

import (
	"context"

	"explorergen/domain/sheet"
)

// SheetSource fetches dimension sheets. Implementations must be safe for
// concurrent use.
type SheetSource interface {
	Fetch(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error)
}

// SheetSourceFunc adapts a function to SheetSource.
type SheetSourceFunc func(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error)

func (f SheetSourceFunc) Fetch(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error) {
	return f(ctx, ref)
}
