package repository

import (
	"context"
	"io"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

// SummaryRepository defines access to an access-summaries tree. Root is a
// local directory or an s3://bucket/prefix URL.
type SummaryRepository interface {
	// ListDatasets returns the dataset directory names under <root>/summaries,
	// sorted. It returns types.ErrSummariesNotFound when the directory is absent.
	ListDatasets(ctx context.Context, root string) ([]string, error)

	// Summary files. An absent file yields types.ErrFileNotFound; a file that
	// cannot be parsed yields an error wrapping types.ErrMalformedFile.
	ReadRegionRecords(ctx context.Context, root, dataset string) ([]entity.RegionRecord, error)
	ReadDailyRecords(ctx context.Context, root, dataset string) ([]entity.DailyRecord, error)

	// OpenFile opens <root>/<name>.
	OpenFile(ctx context.Context, root, name string) (io.ReadCloser, error)
}
