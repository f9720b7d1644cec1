package lsh

import (
	"context"
	"log/slog"

	"github.com/thoth-ai/thoth/pkg/dbadapter"
)

const (
	// valuesPerColumn caps how many distinct cell values are sampled per
	// column during an index build.
	valuesPerColumn = 200
	// maxValueLen skips long free-text cells; they drown the shingle space
	// and never match extracted keywords.
	maxValueLen = 80
)

// Build walks every table of the database through the adapter and indexes
// sampled distinct cell values. Columns that fail to sample are skipped so a
// single unreadable column does not abort preprocessing.
func Build(ctx context.Context, mgr dbadapter.Manager, logger *slog.Logger) (*Index, error) {
	tables, err := mgr.Tables(ctx)
	if err != nil {
		return nil, err
	}

	ix := NewIndex()
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		samples, err := mgr.ExampleData(ctx, table.Name, valuesPerColumn)
		if err != nil {
			logger.Warn("skipping table during index build",
				"table", table.Name, "error", err)
			continue
		}
		for column, values := range samples {
			for _, v := range values {
				if v == "" || len(v) > maxValueLen {
					continue
				}
				ix.Add(table.Name, column, v)
			}
		}
	}
	logger.Info("cell value index built", "tables", len(tables), "values", ix.Len())
	return ix, nil
}
