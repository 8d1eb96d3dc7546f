package summary

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLocalListDatasets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "summaries", "000409", "by_region.tsv"), "region\tbytes_sent\n")
	writeFile(t, filepath.Join(root, "summaries", "000026", "by_day.tsv"), "date\tbytes_sent\n")
	writeFile(t, filepath.Join(root, "summaries", "README.md"), "not a dataset")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "summaries", "archive"), 0755))

	repo := NewSummaryRepository()
	datasets, err := repo.ListDatasets(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"000026", "000409", "archive"}, datasets)
}

func TestLocalListDatasetsMissingSummaries(t *testing.T) {
	repo := NewSummaryRepository()
	_, err := repo.ListDatasets(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, types.ErrSummariesNotFound)
}

func TestLocalReadRecords(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "summaries", "000026", "by_region.tsv"), "region\tbytes_sent\nUS\t12\n")
	writeFile(t, filepath.Join(root, "summaries", "000026", "by_day.tsv"), "date\tbytes_sent\n2023-05-01\t12\n")

	repo := NewSummaryRepository()
	ctx := context.Background()

	regions, err := repo.ReadRegionRecords(ctx, root, "000026")
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, int64(12), regions[0].BytesSent)

	days, err := repo.ReadDailyRecords(ctx, root, "000026")
	require.NoError(t, err)
	require.Len(t, days, 1)

	_, err = repo.ReadRegionRecords(ctx, root, "999999")
	assert.ErrorIs(t, err, types.ErrFileNotFound)
}

func TestLocalReadMalformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "summaries", "000026", "by_region.tsv"), "wrong\theader\nUS\t1\n")

	_, err := NewSummaryRepository().ReadRegionRecords(context.Background(), root, "000026")
	assert.ErrorIs(t, err, types.ErrMalformedFile)
	assert.Contains(t, err.Error(), "by_region.tsv")
}

func TestLocalOpenFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "region_codes_to_coordinates.yaml"), "US: {}\n")

	rc, err := NewSummaryRepository().OpenFile(context.Background(), root, "region_codes_to_coordinates.yaml")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "US: {}\n", string(data))
}

func TestStoreSelection(t *testing.T) {
	assert.True(t, IsS3Root("s3://dandiarchive/access-summaries"))
	assert.False(t, IsS3Root("../access-summaries/content"))

	local, remote := &localStore{}, newS3Store(newFakeS3(nil))
	repo := newSummaryRepositoryWithStores(local, remote)
	assert.Same(t, remote, repo.storeFor("s3://bucket").(*s3Store))
	assert.Same(t, local, repo.storeFor("/tmp/content").(*localStore))
}
