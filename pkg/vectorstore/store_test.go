package vectorstore

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/pkg/config"
	testutil "github.com/thoth-ai/thoth/test/util"
)

// fakeBackend keeps the added documents in memory and returns them in
// insertion order from similarity search.
type fakeBackend struct {
	docs    []schema.Document
	dropped int
}

func (f *fakeBackend) AddDocuments(_ context.Context, docs []schema.Document, _ ...vectorstores.Option) ([]string, error) {
	f.docs = append(f.docs, docs...)
	return make([]string, len(docs)), nil
}

func (f *fakeBackend) SimilaritySearch(_ context.Context, _ string, numDocuments int, _ ...vectorstores.Option) ([]schema.Document, error) {
	if numDocuments > len(f.docs) {
		numDocuments = len(f.docs)
	}
	out := make([]schema.Document, numDocuments)
	copy(out, f.docs[:numDocuments])
	return out, nil
}

func (f *fakeBackend) dropCollection(context.Context) error {
	f.dropped++
	f.docs = nil
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeBackend) {
	t.Helper()
	b := &fakeBackend{}
	s := &Store{
		backend:     b,
		backendKind: config.VectorBackendQdrant,
		catalog:     testutil.NewEntClient(t),
		collection:  "ws1",
		logger:      slog.Default(),
	}
	return s, b
}

func TestStore_AddCatalogsMetadata(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddEvidence(ctx, []EvidenceDocument{
		{Evidence: "Charter schools are type 'Charter'"},
	}))
	require.NoError(t, s.AddColumns(ctx, []ColumnDocument{
		{Table: "schools", Column: "county", DataType: "TEXT", Description: "county name"},
	}))

	assert.Len(t, b.docs, 2)

	rows, err := s.Documents(ctx, DocTypeColumn)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "county name", rows[0].Content)
	assert.Equal(t, "column", string(rows[0].DocType))
	assert.Equal(t, "schools", rows[0].Fields["table"])
	assert.Equal(t, "county", rows[0].Fields["column"])
}

func TestStore_SearchFiltersByDocType(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddSQLPairs(ctx, []SQLPairDocument{
		{Question: "How many schools?", SQL: "SELECT count(*) FROM schools"},
	}))
	require.NoError(t, s.AddEvidence(ctx, []EvidenceDocument{
		{Evidence: "first hint"},
		{Evidence: "second hint"},
	}))

	hits, err := s.SearchEvidence(ctx, "hint", 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "first hint", hits[0].Evidence)

	pairs, err := s.SearchSQLPairs(ctx, "schools", 5)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "SELECT count(*) FROM schools", pairs[0].SQL)
}

func TestStore_GetDocument(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddEvidence(ctx, []EvidenceDocument{{Evidence: "a hint"}}))
	rows, err := s.Documents(ctx, DocTypeEvidence)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	doc, err := s.GetDocument(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "a hint", doc.Content)

	_, err = s.GetDocument(ctx, "no-such-doc")
	assert.True(t, ent.IsNotFound(err))
}

func TestStore_DeleteDocumentsRebuildsBackend(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddEvidence(ctx, []EvidenceDocument{
		{Evidence: "e1"}, {Evidence: "e2"}, {Evidence: "e3"},
	}))
	require.NoError(t, s.AddSQLPairs(ctx, []SQLPairDocument{
		{Question: "q", SQL: "SELECT 1"},
	}))

	rows, err := s.Documents(ctx, DocTypeEvidence)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.NoError(t, s.DeleteDocuments(ctx, []string{rows[0].ID, "unknown-id"}))

	n, err := s.Count(ctx, DocTypeEvidence)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// The backend was rebuilt from the surviving catalog rows.
	assert.Equal(t, 1, b.dropped)
	assert.Len(t, b.docs, 3)

	// Surviving rows keep their IDs.
	kept, err := s.Documents(ctx, DocTypeEvidence)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, rows[1].ID, kept[0].ID)

	// Unknown IDs alone touch nothing.
	require.NoError(t, s.DeleteDocuments(ctx, []string{"still-unknown"}))
	assert.Equal(t, 1, b.dropped)
}

func TestStore_GetCollectionInfo(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddEvidence(ctx, []EvidenceDocument{{Evidence: "e1"}, {Evidence: "e2"}}))
	require.NoError(t, s.AddSQLPairs(ctx, []SQLPairDocument{{Question: "q", SQL: "SELECT 1"}}))

	info, err := s.GetCollectionInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ws1", info.Collection)
	assert.Equal(t, string(config.VectorBackendQdrant), info.Backend)
	assert.Equal(t, "green", info.Status)
	assert.Equal(t, 3, info.Total)
	assert.Equal(t, 2, info.ByType[DocTypeEvidence])
	assert.Equal(t, 0, info.ByType[DocTypeColumn])
	assert.Equal(t, 1, info.ByType[DocTypeSQL])
}
