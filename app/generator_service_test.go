package app

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"explorergen/adapters/sink"
	"explorergen/domain/sheet"
	"explorergen/internal"
	"explorergen/internal/errors"
	"explorergen/internal/explorers"
	"explorergen/internal/explorers/common"
	"explorergen/internal/explorers/inequality"
	"explorergen/internal/explorers/poverty"
	"explorergen/internal/metrics"
	"explorergen/internal/testkit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newService(t *testing.T, kit *testkit.TestKit, out *sink.MemorySink) *GeneratorService {
	t.Helper()
	logger := internal.NewLogger(internal.LogLevelError)
	return NewGeneratorService(explorers.Default(common.Defaults()), kit, out, metrics.NewRecorder(), logger, 3)
}

func TestGenerateAll(t *testing.T) {
	kit := testkit.NewTestKit()
	out := sink.NewMemorySink()
	svc := newService(t, kit, out)

	report, err := svc.Generate(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Explorers, 5)
	assert.Equal(t, []string{
		"incomes-across-distribution-comparison",
		"inequality",
		"lis-inequality",
		"poverty-explorer-2011-vs-2017-ppp",
		"poverty-explorer-expanded",
	}, out.Names())

	for _, r := range report.Explorers {
		data, err := out.Get(r.Name)
		require.NoError(t, err)
		assert.Equal(t, len(data), r.Bytes, r.Name)
		assert.Equal(t, "memory://"+r.Name+".explorer.tsv", r.Location)
		assert.Positive(t, r.GrapherRows, r.Name)
	}

	// poverty 3, ppp 5, inequality 6, lis 3 of which all are shared with
	// inequality, distribution 17 of which 3 are shared with inequality
	assert.Equal(t, 28, report.SheetsFetched)
	assert.Equal(t, 28, kit.TotalFetches(), "each sheet reaches the source once per run")
}

func TestGenerateSelected(t *testing.T) {
	kit := testkit.NewTestKit()
	out := sink.NewMemorySink()
	svc := newService(t, kit, out)

	report, err := svc.Generate(context.Background(), poverty.Name)
	require.NoError(t, err)
	require.Len(t, report.Explorers, 1)
	assert.Equal(t, []string{poverty.Name}, out.Names())
	assert.Equal(t, 3, kit.TotalFetches())

	data, err := out.Get(poverty.Name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "explorerTitle\t"))
}

func TestGenerateUnknownExplorer(t *testing.T) {
	svc := newService(t, testkit.NewTestKit(), sink.NewMemorySink())

	_, err := svc.Generate(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestGenerateFetchFailureWritesNothing(t *testing.T) {
	kit := testkit.NewTestKit()
	ref := sheet.Ref{DocumentID: inequality.WIDDocumentID, Name: "welfare"}
	kit.FailOn(ref, errors.ExternalServiceError("google sheets", stderrors.New("503")))
	out := sink.NewMemorySink()
	svc := newService(t, kit, out)

	_, err := svc.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeExternalService))
	assert.Contains(t, err.Error(), "welfare")
	assert.Empty(t, out.Names())
}

func TestGenerateBrokenReference(t *testing.T) {
	kit := testkit.NewTestKit()
	// Without the after tax measure the comparison views point at missing columns.
	set := testkit.LISSheets()
	ref := sheet.Ref{DocumentID: inequality.LISDocumentID, Name: "welfare"}
	orig := set[ref]
	var rows [][]string
	for _, rec := range orig.Records {
		if rec["slug"] == "dhi" {
			continue
		}
		row := make([]string, len(orig.Headers))
		for i, h := range orig.Headers {
			row[i] = rec[h]
		}
		rows = append(rows, row)
	}
	kit.Add(sheet.Set{ref: sheet.New(ref, orig.Headers, rows)})
	svc := newService(t, kit, sink.NewMemorySink())

	_, err := svc.Generate(context.Background(), "lis-inequality")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeBrokenReference))
	assert.Contains(t, err.Error(), "gini_dhi_eq")
}

func TestCheckDoesNotWrite(t *testing.T) {
	out := sink.NewMemorySink()
	svc := newService(t, testkit.NewTestKit(), out)

	report, err := svc.Check(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Explorers, 5)
	for _, r := range report.Explorers {
		assert.Empty(t, r.Location)
	}
	assert.Empty(t, out.Names())
}

func TestGenerateWithoutSink(t *testing.T) {
	svc := NewGeneratorService(explorers.Default(common.Defaults()), testkit.NewTestKit(), nil, nil, nil, 1)

	_, err := svc.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeConfigInvalid))

	_, err = svc.Check(context.Background(), "lis-inequality")
	assert.NoError(t, err)
}

func TestRender(t *testing.T) {
	kit := testkit.NewTestKit()
	svc := newService(t, kit, nil)

	data, err := svc.Render(context.Background(), "lis-inequality")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\ngraphers\n")
	assert.Equal(t, 3, kit.TotalFetches())
}

func TestSheets(t *testing.T) {
	svc := newService(t, testkit.NewTestKit(), nil)

	sheets, err := svc.Sheets(context.Background(), "inequality", "lis-inequality")
	require.NoError(t, err)
	assert.Len(t, sheets, 6)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newService(t, testkit.NewTestKit(), sink.NewMemorySink())

	_, err := svc.Generate(ctx)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
}
