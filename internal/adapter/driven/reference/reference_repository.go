package reference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/domain/repository"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// CoordinatesFile fica na raiz dos resumos, ao lado de summaries/.
const CoordinatesFile = "region_codes_to_coordinates.yaml"

// featureNameProperties são as propriedades testadas, em ordem, para o nome do país.
var featureNameProperties = []string{"NAME", "name", "ADMIN"}

// ReferenceRepositoryImpl implementa o ReferenceRepository.
type ReferenceRepositoryImpl struct {
	summaries repository.SummaryRepository
}

// NewReferenceRepository cria um novo ReferenceRepository. As coordenadas são
// lidas pela mesma árvore de resumos (local ou S3).
func NewReferenceRepository(summaries repository.SummaryRepository) repository.ReferenceRepository {
	return &ReferenceRepositoryImpl{summaries: summaries}
}

// LoadCoordinates lê <root>/region_codes_to_coordinates.yaml.
func (r *ReferenceRepositoryImpl) LoadCoordinates(ctx context.Context, root string) (entity.CoordinateTable, error) {
	rc, err := r.summaries.OpenFile(ctx, root, CoordinatesFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	table := entity.CoordinateTable{}
	if err := yaml.NewDecoder(rc).Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing %s: invalid YAML: %w", CoordinatesFile, err)
	}
	return table, nil
}

// LoadCountryNames carrega o mapeamento código→nome em JSON, YAML ou TOML,
// conforme a extensão do arquivo.
func (r *ReferenceRepositoryImpl) LoadCountryNames(path string) (map[string]string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &names); err != nil {
			return nil, fmt.Errorf("error parsing JSON file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &names); err != nil {
			return nil, fmt.Errorf("error parsing YAML file %s: %w", path, err)
		}
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("error parsing TOML file %s: %w", path, err)
		}
		for code, value := range tree.ToMap() {
			names[code] = fmt.Sprint(value)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, path)
	}
	return names, nil
}

// LoadGeoFeatures lê os contornos de países de um GeoJSON (Natural Earth
// admin_0_countries). Apenas os anéis externos são mantidos.
func (r *ReferenceRepositoryImpl) LoadGeoFeatures(path string) ([]entity.GeoFeature, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing GeoJSON file %s: %w", path, err)
	}

	features := make([]entity.GeoFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		name := featureName(f.Properties)
		rings := outerRings(f.Geometry)
		if name == "" || len(rings) == 0 {
			continue
		}
		features = append(features, entity.GeoFeature{Name: name, Rings: rings})
	}
	sort.SliceStable(features, func(i, j int) bool { return features[i].Name < features[j].Name })
	return features, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}

func featureName(props geojson.Properties) string {
	for _, key := range featureNameProperties {
		if name := props.MustString(key, ""); name != "" {
			return name
		}
	}
	return ""
}

func outerRings(g orb.Geometry) [][]entity.GeoPoint {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return nil
		}
		return [][]entity.GeoPoint{toGeoPoints(geom[0])}
	case orb.MultiPolygon:
		var rings [][]entity.GeoPoint
		for _, poly := range geom {
			if len(poly) > 0 {
				rings = append(rings, toGeoPoints(poly[0]))
			}
		}
		return rings
	default:
		return nil
	}
}

func toGeoPoints(ring orb.Ring) []entity.GeoPoint {
	points := make([]entity.GeoPoint, len(ring))
	for i, p := range ring {
		points[i] = entity.GeoPoint{Lon: p.Lon(), Lat: p.Lat()}
	}
	return points
}
