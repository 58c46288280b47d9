package testkit

import (
	"context"
	"sync"

	"explorergen/domain/sheet"
	"explorergen/internal/errors"
)

// TestKit is an in-memory sheet source seeded with every explorer fixture.
// It counts fetches per ref and can be told to fail on chosen refs.
type TestKit struct {
	mu       sync.Mutex
	sheets   sheet.Set
	fetches  map[sheet.Ref]int
	failures map[sheet.Ref]error
}

// NewTestKit creates a kit holding the fixtures of every explorer.
func NewTestKit() *TestKit {
	k := &TestKit{
		sheets:   sheet.Set{},
		fetches:  make(map[sheet.Ref]int),
		failures: make(map[sheet.Ref]error),
	}
	for _, set := range []sheet.Set{PovertySheets(), PPPSheets(), InequalitySheets(), LISSheets(), DistributionSheets()} {
		k.Add(set)
	}
	return k
}

// Add merges set into the kit. Later sheets replace earlier ones.
func (k *TestKit) Add(set sheet.Set) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for ref, s := range set {
		k.sheets[ref] = s
	}
}

// FailOn makes every fetch of ref return err.
func (k *TestKit) FailOn(ref sheet.Ref, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.failures[ref] = err
}

func (k *TestKit) Fetch(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.fetches[ref]++
	if err, ok := k.failures[ref]; ok {
		return nil, err
	}
	s, ok := k.sheets[ref]
	if !ok {
		return nil, errors.NotFound("sheet " + ref.String())
	}
	return s, nil
}

// Fetches reports how often ref was fetched.
func (k *TestKit) Fetches(ref sheet.Ref) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.fetches[ref]
}

// TotalFetches sums fetches over every ref.
func (k *TestKit) TotalFetches() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	n := 0
	for _, c := range k.fetches {
		n += c
	}
	return n
}
