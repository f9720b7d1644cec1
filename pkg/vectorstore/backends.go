package vectorstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/url"

	milvusclient "github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/chroma"
	"github.com/tmc/langchaingo/vectorstores/milvus"
	"github.com/tmc/langchaingo/vectorstores/pgvector"
	"github.com/tmc/langchaingo/vectorstores/qdrant"

	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
)

// BackendConfig is the connection info of one vector store backend.
type BackendConfig struct {
	Backend    config.VectorBackend
	URL        string
	APIKey     string
	Collection string
}

// backend couples the langchaingo store with the maintenance operations the
// common VectorStore interface does not cover.
type backend interface {
	vectorstores.VectorStore
	dropCollection(ctx context.Context) error
}

func newBackend(ctx context.Context, cfg BackendConfig, embedder embeddings.Embedder) (backend, error) {
	switch cfg.Backend {
	case config.VectorBackendQdrant:
		return newQdrantBackend(cfg, embedder)
	case config.VectorBackendChroma:
		return newChromaBackend(cfg, embedder)
	case config.VectorBackendPGVector:
		return newPGVectorBackend(ctx, cfg, embedder)
	case config.VectorBackendMilvus:
		return newMilvusBackend(ctx, cfg, embedder)
	default:
		return nil, apperrors.Critical(apperrors.CategoryConfiguration,
			fmt.Sprintf("unsupported vector backend: %s", cfg.Backend))
	}
}

type qdrantBackend struct {
	qdrant.Store
	baseURL    string
	apiKey     string
	collection string
}

func newQdrantBackend(cfg BackendConfig, embedder embeddings.Embedder) (backend, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryConfiguration, apperrors.SeverityCritical,
			"invalid qdrant URL", err)
	}
	opts := []qdrant.Option{
		qdrant.WithURL(*u),
		qdrant.WithCollectionName(cfg.Collection),
		qdrant.WithEmbedder(embedder),
	}
	if cfg.APIKey != "" {
		opts = append(opts, qdrant.WithAPIKey(cfg.APIKey))
	}
	store, err := qdrant.New(opts...)
	if err != nil {
		return nil, err
	}
	return &qdrantBackend{Store: store, baseURL: cfg.URL, apiKey: cfg.APIKey, collection: cfg.Collection}, nil
}

// dropCollection uses the REST API; the langchaingo store has no delete surface.
func (b *qdrantBackend) dropCollection(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/collections/%s", b.baseURL, url.PathEscape(b.collection))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	if b.apiKey != "" {
		req.Header.Set("api-key", b.apiKey)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("qdrant delete collection: status %d", resp.StatusCode)
	}
	return nil
}

type chromaBackend struct {
	chroma.Store
	baseURL    string
	collection string
}

func newChromaBackend(cfg BackendConfig, embedder embeddings.Embedder) (backend, error) {
	store, err := chroma.New(
		chroma.WithChromaURL(cfg.URL),
		chroma.WithNameSpace(cfg.Collection),
		chroma.WithEmbedder(embedder),
	)
	if err != nil {
		return nil, err
	}
	return &chromaBackend{Store: store, baseURL: cfg.URL, collection: cfg.Collection}, nil
}

func (b *chromaBackend) dropCollection(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/v1/collections/%s", b.baseURL, url.PathEscape(b.collection))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("chroma delete collection: status %d", resp.StatusCode)
	}
	return nil
}

type pgvectorBackend struct {
	pgvector.Store
	connURL    string
	collection string
}

func newPGVectorBackend(ctx context.Context, cfg BackendConfig, embedder embeddings.Embedder) (backend, error) {
	store, err := pgvector.New(ctx,
		pgvector.WithConnectionURL(cfg.URL),
		pgvector.WithCollectionName(cfg.Collection),
		pgvector.WithEmbedder(embedder),
	)
	if err != nil {
		return nil, err
	}
	return &pgvectorBackend{Store: store, connURL: cfg.URL, collection: cfg.Collection}, nil
}

// dropCollection removes the collection row and its embeddings from the
// default langchaingo tables.
func (b *pgvectorBackend) dropCollection(ctx context.Context) error {
	db, err := sql.Open("pgx", b.connURL)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`DELETE FROM langchaingo_pg_embedding e
		 USING langchaingo_pg_collection c
		 WHERE e.collection_id = c.uuid AND c.name = $1`, b.collection)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`DELETE FROM langchaingo_pg_collection WHERE name = $1`, b.collection)
	return err
}

type milvusBackend struct {
	milvus.Store
	address    string
	collection string
}

func newMilvusBackend(ctx context.Context, cfg BackendConfig, embedder embeddings.Embedder) (backend, error) {
	idx, err := entity.NewIndexAUTOINDEX(entity.L2)
	if err != nil {
		return nil, err
	}
	store, err := milvus.New(ctx,
		milvusclient.Config{Address: cfg.URL},
		milvus.WithCollectionName(cfg.Collection),
		milvus.WithEmbedder(embedder),
		milvus.WithIndex(idx),
	)
	if err != nil {
		return nil, err
	}
	return &milvusBackend{Store: store, address: cfg.URL, collection: cfg.Collection}, nil
}

func (b *milvusBackend) dropCollection(ctx context.Context) error {
	cli, err := milvusclient.NewClient(ctx, milvusclient.Config{Address: b.address})
	if err != nil {
		return err
	}
	defer cli.Close()
	return cli.DropCollection(ctx, b.collection)
}
