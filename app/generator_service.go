package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"explorergen/adapters/sheetcache"
	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal"
	"explorergen/internal/errors"
	"explorergen/internal/explorers"
	"explorergen/internal/metrics"
	"explorergen/internal/tsv"
	"explorergen/ports"
)

// maxConcurrentPuts bounds simultaneous sink writes.
const maxConcurrentPuts = 2

// GeneratorService fetches dimension sheets, builds explorers and writes
// them to a sink.
type GeneratorService struct {
	registry    *explorers.Registry
	source      ports.SheetSource
	sink        ports.ExplorerSink
	metrics     *metrics.Recorder
	logger      *internal.Logger
	parallelism int
	puts        *semaphore.Weighted
}

// ExplorerReport describes one generated explorer.
type ExplorerReport struct {
	Name        string        `json:"name"`
	Location    string        `json:"location,omitempty"`
	GrapherRows int           `json:"grapher_rows"`
	TableBlocks int           `json:"table_blocks"`
	ColumnRows  int           `json:"column_rows"`
	Bytes       int           `json:"bytes"`
	Duration    time.Duration `json:"duration"`
}

// RunReport is the outcome of one Generate or Check call.
type RunReport struct {
	RunID         string           `json:"run_id"`
	StartedAt     time.Time        `json:"started_at"`
	Duration      time.Duration    `json:"duration"`
	SheetsFetched int              `json:"sheets_fetched"`
	Explorers     []ExplorerReport `json:"explorers"`
}

// NewGeneratorService creates a generator service. sink may be nil for a
// service that only checks and renders.
func NewGeneratorService(registry *explorers.Registry, source ports.SheetSource, sink ports.ExplorerSink, recorder *metrics.Recorder, logger *internal.Logger, parallelism int) *GeneratorService {
	if parallelism < 1 {
		parallelism = 1
	}
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &GeneratorService{
		registry:    registry,
		source:      source,
		sink:        sink,
		metrics:     recorder,
		logger:      logger,
		parallelism: parallelism,
		puts:        semaphore.NewWeighted(maxConcurrentPuts),
	}
}

// Generate builds the named explorers, or all of them, and writes each to
// the sink. The first failure cancels the rest of the run.
func (s *GeneratorService) Generate(ctx context.Context, names ...string) (*RunReport, error) {
	if s.sink == nil {
		return nil, errors.ConfigInvalid("generator service has no sink")
	}
	return s.run(ctx, names, true)
}

// Check builds and validates the named explorers without writing them. On
// top of reference checking it confirms the encoded file parses back into
// the same rows.
func (s *GeneratorService) Check(ctx context.Context, names ...string) (*RunReport, error) {
	return s.run(ctx, names, false)
}

// Render builds one explorer and returns its encoded form.
func (s *GeneratorService) Render(ctx context.Context, name string) ([]byte, error) {
	b, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	set, _, err := s.fetch(ctx, sheetcache.New(s.source), []ports.ExplorerBuilder{b})
	if err != nil {
		return nil, err
	}
	_, data, err := s.build(b, set)
	return data, err
}

// Sheets fetches every sheet the named explorers read. The snapshot command
// stores them for offline runs.
func (s *GeneratorService) Sheets(ctx context.Context, names ...string) ([]*sheet.Sheet, error) {
	builders, err := s.registry.Select(names...)
	if err != nil {
		return nil, err
	}
	cache := sheetcache.New(s.source)
	if _, _, err := s.fetch(ctx, cache, builders); err != nil {
		return nil, err
	}
	return cache.Sheets(), nil
}

func (s *GeneratorService) run(ctx context.Context, names []string, write bool) (*RunReport, error) {
	builders, err := s.registry.Select(names...)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Explorers: make([]ExplorerReport, len(builders)),
	}
	s.logger.Info("[GeneratorService] Run %s started for %d explorers", report.RunID, len(builders))

	cache := sheetcache.New(s.source)
	set, fetched, err := s.fetch(ctx, cache, builders)
	if err != nil {
		s.logger.Error("[GeneratorService] Run %s failed fetching sheets: %v", report.RunID, err)
		return nil, err
	}
	report.SheetsFetched = fetched

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range builders {
		g.Go(func() error {
			start := time.Now()
			e, data, err := s.build(b, set)
			if err != nil {
				return err
			}
			if !write {
				if err := roundTrip(e, data); err != nil {
					return errors.Wrapf(err, "explorer %s does not round-trip", b.Name())
				}
			}

			stats := e.Stats()
			r := ExplorerReport{
				Name:        b.Name(),
				GrapherRows: stats.GrapherRows,
				TableBlocks: stats.TableBlocks,
				ColumnRows:  stats.ColumnRows,
				Bytes:       len(data),
			}
			if write {
				if err := s.put(gctx, b.Name(), data); err != nil {
					return err
				}
				r.Location = s.sink.Location(b.Name())
				s.metrics.ExplorerWritten(b.Name(), time.Now())
			}
			r.Duration = time.Since(start)
			s.metrics.ExplorerBuilt(b.Name(), r.GrapherRows, r.ColumnRows, r.Bytes, r.Duration)
			report.Explorers[i] = r

			s.logger.Debug("[GeneratorService] %s: %d graphers, %d tables, %d bytes in %v",
				r.Name, r.GrapherRows, r.TableBlocks, r.Bytes, r.Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("[GeneratorService] Run %s failed: %v", report.RunID, err)
		return nil, err
	}

	report.Duration = time.Since(report.StartedAt)
	s.logger.Info("[GeneratorService] Run %s finished in %v (%d sheets fetched)",
		report.RunID, report.Duration, report.SheetsFetched)
	return report, nil
}

// fetch loads every sheet the builders need, at most parallelism at a time.
// It returns the sheets and how many fetches reached the source.
func (s *GeneratorService) fetch(ctx context.Context, cache *sheetcache.Cache, builders []ports.ExplorerBuilder) (sheet.Set, int, error) {
	var refs []sheet.Ref
	seen := make(map[sheet.Ref]bool)
	for _, b := range builders {
		for _, ref := range b.Sheets() {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}

	var mu sync.Mutex
	set := make(sheet.Set, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for _, ref := range refs {
		g.Go(func() error {
			sh, err := cache.Fetch(gctx, ref)
			if err != nil {
				s.metrics.SheetFailed(ref.DocumentID)
				return errors.Wrapf(err, "fetching sheet %s", ref.Name)
			}
			s.metrics.SheetFetched(ref.DocumentID)
			mu.Lock()
			set[ref] = sh
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return set, cache.Fetched(), nil
}

func (s *GeneratorService) build(b ports.ExplorerBuilder, set sheet.Set) (*explorer.Explorer, []byte, error) {
	e, err := b.Build(set)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building %s", b.Name())
	}
	if err := explorer.CheckReferences(e); err != nil {
		return nil, nil, errors.Wrapf(err, "checking %s", b.Name())
	}
	data, err := tsv.Marshal(e)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encoding %s", b.Name())
	}
	return e, data, nil
}

func (s *GeneratorService) put(ctx context.Context, name string, data []byte) error {
	if err := s.puts.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.puts.Release(1)
	if err := s.sink.Put(ctx, name, data); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return nil
}

func roundTrip(e *explorer.Explorer, data []byte) error {
	doc, err := tsv.ParseExplorer(string(data))
	if err != nil {
		return err
	}
	if diff := cmp.Diff(tsv.DocumentOf(e), doc); diff != "" {
		return errors.ValidationError("parsed explorer differs (-built +parsed):\n" + diff)
	}
	return nil
}
