package ports

import (
	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
)

// ExplorerBuilder expands dimension sheets into one explorer definition.
type ExplorerBuilder interface {
	// Name is the explorer file name without extension.
	Name() string
	// Sheets lists every worksheet Build reads.
	Sheets() []sheet.Ref
	// Build runs the expansion. sheets holds every ref from Sheets.
	Build(sheets sheet.Set) (*explorer.Explorer, error)
}
