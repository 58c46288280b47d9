package sheetcache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/sheet"
	"explorergen/ports"
)

func countingSource(calls *int32, fail bool) ports.SheetSource {
	return ports.SheetSourceFunc(func(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error) {
		atomic.AddInt32(calls, 1)
		if fail {
			return nil, fmt.Errorf("boom")
		}
		return sheet.New(ref, []string{"slug"}, [][]string{{"dhi"}}), nil
	})
}

func TestCacheFetchesOnce(t *testing.T) {
	var calls int32
	c := New(countingSource(&calls, false))
	ref := sheet.Ref{DocumentID: "doc", Name: "welfare"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := c.Fetch(context.Background(), ref)
			assert.NoError(t, err)
			assert.Equal(t, 1, s.Len())
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, 1, c.Fetched())
	assert.Len(t, c.Sheets(), 1)

	_, err := c.Fetch(context.Background(), sheet.Ref{DocumentID: "doc", Name: "tables"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Fetched())

	c.Reset()
	assert.Empty(t, c.Sheets())
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	var calls int32
	c := New(countingSource(&calls, true))
	ref := sheet.Ref{DocumentID: "doc", Name: "welfare"}

	_, err := c.Fetch(context.Background(), ref)
	require.Error(t, err)
	_, err = c.Fetch(context.Background(), ref)
	require.Error(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.Zero(t, c.Fetched())
}
