package entity

// Byte thresholds of the volume categories (binary units).
const (
	MiB int64 = 1024 * 1024
	GiB int64 = 1024 * MiB
	TiB int64 = 1024 * GiB
	PiB int64 = 1024 * TiB
)

// VolumeCategory is a display bucket for a download volume.
type VolumeCategory struct {
	Key        string `json:"key"`
	Fill       string `json:"fill"`
	Stroke     string `json:"stroke"`
	ColorName  string `json:"color_name"`
	Label      string `json:"label"`
	PointSize  int    `json:"point_size"`
	LowerBound int64  `json:"lower_bound"`
}

// VolumeScale is an ordered list of categories, lowest bound first.
// The first category must start at zero; the last one is open-ended.
type VolumeScale []VolumeCategory

// DefaultVolumeScale retorna a tabela fixa de quatro categorias usada nos mapas.
func DefaultVolumeScale() VolumeScale {
	return VolumeScale{
		{Key: "low", Fill: "#26c6da", Stroke: "#0097a7", ColorName: "Cyan", Label: "< 10 MB", PointSize: 20, LowerBound: 0},
		{Key: "medium", Fill: "#66bb6a", Stroke: "#388e3c", ColorName: "Green", Label: "10 MB - 10 GB", PointSize: 40, LowerBound: 10 * MiB},
		{Key: "high", Fill: "#ffca28", Stroke: "#f57f17", ColorName: "Yellow", Label: "10 GB - 10 TB", PointSize: 60, LowerBound: 10 * GiB},
		{Key: "very-high", Fill: "#ff7043", Stroke: "#d84315", ColorName: "Orange", Label: "> 10 TB", PointSize: 80, LowerBound: 10 * TiB},
	}
}

// Classify returns the category whose range contains bytes: the last
// category whose lower bound is <= bytes. Bytes below the first bound (only
// possible for negative input) fall into the first category.
func (s VolumeScale) Classify(bytes int64) VolumeCategory {
	idx := s.Index(bytes)
	return s[idx]
}

// Index é como Classify, mas devolve a posição da categoria na escala.
func (s VolumeScale) Index(bytes int64) int {
	idx := 0
	for i, c := range s {
		if bytes >= c.LowerBound {
			idx = i
		}
	}
	return idx
}
