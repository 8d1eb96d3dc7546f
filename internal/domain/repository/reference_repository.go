package repository

import (
	"context"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

// ReferenceRepository loads the static lookup tables used while rendering.
type ReferenceRepository interface {
	LoadCoordinates(ctx context.Context, root string) (entity.CoordinateTable, error)
	LoadCountryNames(path string) (map[string]string, error)
	LoadGeoFeatures(path string) ([]entity.GeoFeature, error)
}
