package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// localStore lê a árvore de resumos a partir do sistema de arquivos.
type localStore struct{}

func (s *localStore) listDirs(_ context.Context, root, rel string) ([]string, error) {
	dir := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *localStore) open(_ context.Context, root, rel string) (io.ReadCloser, error) {
	name := filepath.Join(root, filepath.FromSlash(rel))
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", name, err)
	}
	return f, nil
}
