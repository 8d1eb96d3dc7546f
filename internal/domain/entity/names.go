package entity

// FeatureAlternate lists the spellings a geo-feature vocabulary uses for a
// country whose mapped name differs from the feature name.
type FeatureAlternate struct {
	CountryName  string   `json:"country_name" yaml:"country_name" toml:"country_name"`
	FeatureNames []string `json:"feature_names" yaml:"feature_names" toml:"feature_names"`
}

// DefaultFeatureAlternates retorna a tabela de reconciliação com os nomes do
// Natural Earth. A ordem é significativa: a primeira correspondência vence.
func DefaultFeatureAlternates() []FeatureAlternate {
	return []FeatureAlternate{
		{CountryName: "USA", FeatureNames: []string{"United States of America", "United States"}},
		{CountryName: "England", FeatureNames: []string{"United Kingdom", "Great Britain"}},
		{CountryName: "Russia", FeatureNames: []string{"Russian Federation"}},
		{CountryName: "South Korea", FeatureNames: []string{"Korea", "Republic of Korea"}},
		{CountryName: "Czech Republic", FeatureNames: []string{"Czechia", "Czech Republic"}},
	}
}

// NameReconciler maps country codes to display names and matches those names
// against geo-feature names. It is immutable after construction.
type NameReconciler struct {
	names      map[string]string
	alternates []FeatureAlternate
}

// NewNameReconciler cria um reconciliador a partir do mapeamento código→nome
// e da tabela de nomes alternativos.
func NewNameReconciler(names map[string]string, alternates []FeatureAlternate) *NameReconciler {
	copied := make(map[string]string, len(names))
	for k, v := range names {
		copied[k] = v
	}
	alts := make([]FeatureAlternate, len(alternates))
	copy(alts, alternates)
	return &NameReconciler{names: copied, alternates: alts}
}

// DisplayName retorna o nome completo do país para o código.
func (r *NameReconciler) DisplayName(code string) (string, bool) {
	name, ok := r.names[code]
	return name, ok
}

// MatchFeature reports whether featureName designates countryName: exact
// equality first, then the alternates listed for countryName.
func (r *NameReconciler) MatchFeature(countryName, featureName string) bool {
	if countryName == featureName {
		return true
	}
	for _, alt := range r.alternates {
		if alt.CountryName != countryName {
			continue
		}
		for _, name := range alt.FeatureNames {
			if name == featureName {
				return true
			}
		}
	}
	return false
}

// ResolveFeature finds the value for a geo feature in values, which is keyed
// by mapped country name. A direct hit wins; otherwise the alternates table
// is walked in order and the first country listing featureName that has a
// value is returned.
func (r *NameReconciler) ResolveFeature(featureName string, values map[string]float64) (string, float64, bool) {
	if v, ok := values[featureName]; ok {
		return featureName, v, true
	}
	for _, alt := range r.alternates {
		v, ok := values[alt.CountryName]
		if !ok {
			continue
		}
		if r.MatchFeature(alt.CountryName, featureName) {
			return alt.CountryName, v, true
		}
	}
	return "", 0, false
}

// Len retorna o número de códigos mapeados.
func (r *NameReconciler) Len() int {
	return len(r.names)
}
