package vectorstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/schema"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/vectordocument"
	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
)

// searchOverfetch compensates for post-filtering by doc type: the backend is
// asked for this multiple of topK and the filtered result is truncated.
const searchOverfetch = 3

// Store is the vector retrieval surface of one workspace. All three document
// families live in a single collection, discriminated by doc_type metadata.
// An ent-backed catalog mirrors every document so listing and counting never
// hit the vector backend.
type Store struct {
	backend     backend
	backendKind config.VectorBackend
	catalog     *ent.Client
	collection  string
	logger      *slog.Logger
}

// New connects to the configured backend and wraps it with the catalog.
func New(ctx context.Context, cfg BackendConfig, embeddingSpec *config.ModelSpec, catalog *ent.Client, logger *slog.Logger) (*Store, error) {
	embedder, err := NewEmbedder(embeddingSpec)
	if err != nil {
		return nil, err
	}
	b, err := newBackend(ctx, cfg, embedder)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityCritical,
			"failed to connect vector backend", err)
	}
	return &Store{
		backend:     b,
		backendKind: cfg.Backend,
		catalog:     catalog,
		collection:  cfg.Collection,
		logger:      logger.With("component", "vectorstore", "collection", cfg.Collection),
	}, nil
}

// AddEvidence embeds and stores evidence documents.
func (s *Store) AddEvidence(ctx context.Context, items []EvidenceDocument) error {
	docs := make([]schema.Document, 0, len(items))
	for _, it := range items {
		docs = append(docs, it.toSchema())
	}
	return s.add(ctx, DocTypeEvidence, docs)
}

// AddColumns embeds and stores column description documents.
func (s *Store) AddColumns(ctx context.Context, items []ColumnDocument) error {
	docs := make([]schema.Document, 0, len(items))
	for _, it := range items {
		docs = append(docs, it.toSchema())
	}
	return s.add(ctx, DocTypeColumn, docs)
}

// AddSQLPairs embeds and stores question/SQL pair documents.
func (s *Store) AddSQLPairs(ctx context.Context, items []SQLPairDocument) error {
	docs := make([]schema.Document, 0, len(items))
	for _, it := range items {
		docs = append(docs, it.toSchema())
	}
	return s.add(ctx, DocTypeSQL, docs)
}

func (s *Store) add(ctx context.Context, dt DocType, docs []schema.Document) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := s.backend.AddDocuments(ctx, docs); err != nil {
		return apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityError,
			"failed to add documents", err)
	}

	builders := make([]*ent.VectorDocumentCreate, 0, len(docs))
	for _, doc := range docs {
		builders = append(builders, s.catalog.VectorDocument.Create().
			SetID(uuid.New().String()).
			SetCollection(s.collection).
			SetDocType(vectordocument.DocType(dt)).
			SetContent(doc.PageContent).
			SetFields(doc.Metadata))
	}
	if _, err := s.catalog.VectorDocument.CreateBulk(builders...).Save(ctx); err != nil {
		return apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to catalog documents", err)
	}
	s.logger.Debug("documents added", "doc_type", dt, "count", len(docs))
	return nil
}

// SearchEvidence returns the topK most similar evidence entries.
func (s *Store) SearchEvidence(ctx context.Context, query string, topK int) ([]ScoredEvidence, error) {
	docs, err := s.search(ctx, query, topK, DocTypeEvidence)
	if err != nil {
		return nil, err
	}
	out := make([]ScoredEvidence, 0, len(docs))
	for _, d := range docs {
		out = append(out, ScoredEvidence{Evidence: d.PageContent, Score: d.Score})
	}
	return out, nil
}

// SearchColumns returns the topK most similar column descriptions.
func (s *Store) SearchColumns(ctx context.Context, query string, topK int) ([]ScoredColumn, error) {
	docs, err := s.search(ctx, query, topK, DocTypeColumn)
	if err != nil {
		return nil, err
	}
	out := make([]ScoredColumn, 0, len(docs))
	for _, d := range docs {
		out = append(out, ScoredColumn{
			Table:       metaString(d.Metadata, "table"),
			Column:      metaString(d.Metadata, "column"),
			DataType:    metaString(d.Metadata, "data_type"),
			Description: d.PageContent,
			Score:       d.Score,
		})
	}
	return out, nil
}

// SearchSQLPairs returns the topK question/SQL pairs nearest to the query.
func (s *Store) SearchSQLPairs(ctx context.Context, query string, topK int) ([]ScoredSQLPair, error) {
	docs, err := s.search(ctx, query, topK, DocTypeSQL)
	if err != nil {
		return nil, err
	}
	out := make([]ScoredSQLPair, 0, len(docs))
	for _, d := range docs {
		out = append(out, ScoredSQLPair{
			Question: d.PageContent,
			SQL:      metaString(d.Metadata, "sql"),
			Evidence: metaString(d.Metadata, "evidence"),
			Score:    d.Score,
		})
	}
	return out, nil
}

// search over-fetches and filters by doc_type client-side, since metadata
// filter syntax differs per backend.
func (s *Store) search(ctx context.Context, query string, topK int, dt DocType) ([]schema.Document, error) {
	if topK <= 0 {
		return nil, nil
	}
	raw, err := s.backend.SimilaritySearch(ctx, query, topK*searchOverfetch)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityError,
			"similarity search failed", err)
	}
	filtered := make([]schema.Document, 0, topK)
	for _, d := range raw {
		if metaString(d.Metadata, metaDocType) != string(dt) {
			continue
		}
		filtered = append(filtered, d)
		if len(filtered) == topK {
			break
		}
	}
	return filtered, nil
}

// Count returns the catalog count for one document family.
func (s *Store) Count(ctx context.Context, dt DocType) (int, error) {
	return s.catalog.VectorDocument.Query().
		Where(
			vectordocument.CollectionEQ(s.collection),
			vectordocument.DocTypeEQ(vectordocument.DocType(dt)),
		).
		Count(ctx)
}

// Documents lists the cataloged documents of one family.
func (s *Store) Documents(ctx context.Context, dt DocType) ([]*ent.VectorDocument, error) {
	return s.catalog.VectorDocument.Query().
		Where(
			vectordocument.CollectionEQ(s.collection),
			vectordocument.DocTypeEQ(vectordocument.DocType(dt)),
		).
		Order(ent.Asc(vectordocument.FieldID)).
		All(ctx)
}

// GetDocument returns one cataloged document by ID. A missing document
// satisfies ent.IsNotFound.
func (s *Store) GetDocument(ctx context.Context, id string) (*ent.VectorDocument, error) {
	doc, err := s.catalog.VectorDocument.Query().
		Where(
			vectordocument.IDEQ(id),
			vectordocument.CollectionEQ(s.collection),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to read catalog", err)
	}
	return doc, nil
}

// DeleteDocuments removes documents by ID. The backends expose no per-ID
// delete, so the collection is rebuilt from the surviving catalog rows;
// unknown IDs are ignored.
func (s *Store) DeleteDocuments(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	removed, err := s.catalog.VectorDocument.Delete().
		Where(
			vectordocument.CollectionEQ(s.collection),
			vectordocument.IDIn(ids...),
		).
		Exec(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to clear catalog", err)
	}
	if removed == 0 {
		return nil
	}

	keep, err := s.catalog.VectorDocument.Query().
		Where(vectordocument.CollectionEQ(s.collection)).
		All(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to read catalog", err)
	}
	if err := s.backend.dropCollection(ctx); err != nil {
		return apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityError,
			"failed to drop collection", err)
	}
	if len(keep) > 0 {
		docs := make([]schema.Document, 0, len(keep))
		for _, row := range keep {
			docs = append(docs, schema.Document{PageContent: row.Content, Metadata: row.Fields})
		}
		if _, err := s.backend.AddDocuments(ctx, docs); err != nil {
			return apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityError,
				"failed to add documents", err)
		}
	}
	s.logger.Info("documents deleted", "removed", removed, "remaining", len(keep))
	return nil
}

// CollectionInfo summarizes one collection: backend, total, and per-family
// counts read from the catalog.
type CollectionInfo struct {
	Collection string          `json:"collection"`
	Backend    string          `json:"backend"`
	Status     string          `json:"status"`
	Total      int             `json:"total"`
	ByType     map[DocType]int `json:"by_type"`
}

// GetCollectionInfo reports the catalog view of the collection.
func (s *Store) GetCollectionInfo(ctx context.Context) (*CollectionInfo, error) {
	info := &CollectionInfo{
		Collection: s.collection,
		Backend:    string(s.backendKind),
		Status:     "green",
		ByType:     make(map[DocType]int, 3),
	}
	for _, dt := range []DocType{DocTypeEvidence, DocTypeColumn, DocTypeSQL} {
		n, err := s.Count(ctx, dt)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
				"failed to count catalog", err)
		}
		info.ByType[dt] = n
		info.Total += n
	}
	return info, nil
}

// ReplaceType wipes one document family and re-embeds the remainder of the
// collection together with the new documents. The backend has no per-filter
// delete, so replacement rebuilds the collection from the catalog.
func (s *Store) ReplaceType(ctx context.Context, dt DocType, docs []schema.Document) error {
	if err := s.backend.dropCollection(ctx); err != nil {
		return apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityError,
			"failed to drop collection", err)
	}

	keep, err := s.catalog.VectorDocument.Query().
		Where(
			vectordocument.CollectionEQ(s.collection),
			vectordocument.DocTypeNEQ(vectordocument.DocType(dt)),
		).
		All(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to read catalog", err)
	}
	if _, err := s.catalog.VectorDocument.Delete().
		Where(vectordocument.CollectionEQ(s.collection)).
		Exec(ctx); err != nil {
		return apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to clear catalog", err)
	}

	all := make([]schema.Document, 0, len(keep)+len(docs))
	kinds := make([]DocType, 0, len(keep)+len(docs))
	for _, row := range keep {
		all = append(all, schema.Document{PageContent: row.Content, Metadata: row.Fields})
		kinds = append(kinds, DocType(row.DocType))
	}
	for _, d := range docs {
		all = append(all, d)
		kinds = append(kinds, dt)
	}

	// Re-add grouped by kind so the catalog rows carry the right doc_type.
	byKind := make(map[DocType][]schema.Document)
	for i, d := range all {
		byKind[kinds[i]] = append(byKind[kinds[i]], d)
	}
	for kind, group := range byKind {
		if err := s.add(ctx, kind, group); err != nil {
			return err
		}
	}
	s.logger.Info("collection rebuilt", "replaced_type", dt, "total_docs", len(all))
	return nil
}

// ReplaceEvidence replaces the evidence family with the given documents.
func (s *Store) ReplaceEvidence(ctx context.Context, items []EvidenceDocument) error {
	docs := make([]schema.Document, 0, len(items))
	for _, it := range items {
		docs = append(docs, it.toSchema())
	}
	return s.ReplaceType(ctx, DocTypeEvidence, docs)
}

// ReplaceSQLPairs replaces the question/SQL family with the given documents.
func (s *Store) ReplaceSQLPairs(ctx context.Context, items []SQLPairDocument) error {
	docs := make([]schema.Document, 0, len(items))
	for _, it := range items {
		docs = append(docs, it.toSchema())
	}
	return s.ReplaceType(ctx, DocTypeSQL, docs)
}

// Wipe drops the collection and clears its catalog.
func (s *Store) Wipe(ctx context.Context) error {
	if err := s.backend.dropCollection(ctx); err != nil {
		return apperrors.Wrap(apperrors.CategoryVectorDB, apperrors.SeverityError,
			"failed to drop collection", err)
	}
	if _, err := s.catalog.VectorDocument.Delete().
		Where(vectordocument.CollectionEQ(s.collection)).
		Exec(ctx); err != nil {
		return apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityError,
			"failed to clear catalog", err)
	}
	return nil
}
