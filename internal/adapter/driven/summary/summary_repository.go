package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/domain/repository"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// SummariesDir é o subdiretório com um diretório por dandiset.
const SummariesDir = "summaries"

// blobStore abstrai o acesso ao disco local ou ao S3.
type blobStore interface {
	// listDirs returns the names of the immediate subdirectories of rel.
	listDirs(ctx context.Context, root, rel string) ([]string, error)
	// open opens the file at rel; absent files yield types.ErrFileNotFound.
	open(ctx context.Context, root, rel string) (io.ReadCloser, error)
}

// SummaryRepositoryImpl implementa o SummaryRepository escolhendo o backend
// pelo formato da raiz: "s3://bucket/prefix" usa o S3, o resto o disco local.
type SummaryRepositoryImpl struct {
	local  blobStore
	remote blobStore
}

// NewSummaryRepository cria uma nova implementação do SummaryRepository.
func NewSummaryRepository() repository.SummaryRepository {
	return &SummaryRepositoryImpl{
		local:  &localStore{},
		remote: newLazyS3Store(),
	}
}

// newSummaryRepositoryWithStores é usado nos testes.
func newSummaryRepositoryWithStores(local, remote blobStore) *SummaryRepositoryImpl {
	return &SummaryRepositoryImpl{local: local, remote: remote}
}

// IsS3Root reports whether root is an s3:// URL.
func IsS3Root(root string) bool {
	return strings.HasPrefix(root, "s3://")
}

func (r *SummaryRepositoryImpl) storeFor(root string) blobStore {
	if IsS3Root(root) {
		return r.remote
	}
	return r.local
}

func (r *SummaryRepositoryImpl) ListDatasets(ctx context.Context, root string) ([]string, error) {
	dirs, err := r.storeFor(root).listDirs(ctx, root, SummariesDir)
	if errors.Is(err, types.ErrFileNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrSummariesNotFound, joinRoot(root, SummariesDir))
	}
	if err != nil {
		return nil, fmt.Errorf("error listing datasets: %w", err)
	}
	return dirs, nil
}

func (r *SummaryRepositoryImpl) ReadRegionRecords(ctx context.Context, root, dataset string) ([]entity.RegionRecord, error) {
	rc, err := r.storeFor(root).open(ctx, root, path.Join(SummariesDir, dataset, RegionFile))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := parseRegionRecords(rc)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", joinRoot(root, SummariesDir, dataset, RegionFile), err)
	}
	return records, nil
}

func (r *SummaryRepositoryImpl) ReadDailyRecords(ctx context.Context, root, dataset string) ([]entity.DailyRecord, error) {
	rc, err := r.storeFor(root).open(ctx, root, path.Join(SummariesDir, dataset, DailyFile))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := parseDailyRecords(rc)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", joinRoot(root, SummariesDir, dataset, DailyFile), err)
	}
	return records, nil
}

func (r *SummaryRepositoryImpl) OpenFile(ctx context.Context, root, name string) (io.ReadCloser, error) {
	return r.storeFor(root).open(ctx, root, name)
}

// joinRoot monta um caminho legível para mensagens de erro.
func joinRoot(root string, elem ...string) string {
	return strings.TrimSuffix(root, "/") + "/" + path.Join(elem...)
}
