// Package specs builds the brand → model → generation index from the scraped
// vehicle specs dataset.
//
// Records arrive as a flat list of Model and Generation rows. Build buckets them
// by normalized brand key, attaches every generation row to exactly one model
// through an ordered chain of matching strategies, backfills known naming quirks
// from the alias tables, fills image gaps from the brand's local image folder and
// finally picks a representative image per model.
//
// Matching is best effort. Build never fails: malformed or missing input yields a
// smaller, possibly empty, index.
package specs

// Category is the kind of a scraped row.
type Category string

// Record categories.
const (
	CategoryModel      Category = "Model"
	CategoryGeneration Category = "Generation"
)

// Source records how a Model entered the index.
type Source string

// Model sources.
const (
	// SourceModel models come from an explicit Model row or an alias table entry.
	SourceModel Source = "model"
	// SourceGeneration models were synthesized to hold orphaned generation rows.
	SourceGeneration Source = "generation"
)

// RawRecord is one line of the scraped dataset.
type RawRecord struct {
	Category   Category `json:"category"`
	URL        string   `json:"url"`
	Brand      string   `json:"brand"`
	Name       string   `json:"name"`
	Years      string   `json:"years"`
	ImageURL   *string  `json:"image_url,omitempty"`
	LocalImage *string  `json:"local_image,omitempty"`
}

// Image references a picture either on local storage or at a remote URL.
// A nil field means the reference is absent.
type Image struct {
	Local *string `json:"local"`
	URL   *string `json:"url"`
}

// HasAny reports whether either reference is present.
func (i Image) HasAny() bool {
	return i.Local != nil || i.URL != nil
}

// Generation is a production-era variant of a model.
type Generation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Years    string `json:"years"`
	Image    Image  `json:"image"`
	ModelKey string `json:"modelKey"`
	BrandKey string `json:"brandKey"`
}

// Model groups the generations of one vehicle line within a brand.
type Model struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Years               string        `json:"years"`
	Brand               string        `json:"brand"`
	BrandKey            string        `json:"brandKey"`
	Key                 string        `json:"key"`
	Generations         []*Generation `json:"generations"`
	RepresentativeImage *Image        `json:"representativeImage"`
	Source              Source        `json:"source"`
}

// Brand is a manufacturer and its models.
type Brand struct {
	Name   string   `json:"name"`
	Key    string   `json:"key"`
	Models []*Model `json:"models"`
}

// VisibleModels returns the models worth listing for a brand: every model
// that came from an explicit Model row, plus synthesized models whose key
// does not collide with one of those.
func (b *Brand) VisibleModels() []*Model {
	explicit := make(map[string]bool, len(b.Models))
	for _, m := range b.Models {
		if m.Source == SourceModel {
			explicit[m.Key] = true
		}
	}
	visible := make([]*Model, 0, len(b.Models))
	for _, m := range b.Models {
		if m.Source == SourceModel || !explicit[m.Key] {
			visible = append(visible, m)
		}
	}
	return visible
}

// Stats summarizes an Index.
type Stats struct {
	Brands            int            `json:"brands" yaml:"brands"`
	Models            int            `json:"models" yaml:"models"`
	SynthesizedModels int            `json:"synthesizedModels" yaml:"synthesized_models"`
	Generations       int            `json:"generations" yaml:"generations"`
	ImagedGenerations int            `json:"imagedGenerations" yaml:"imaged_generations"`
	ModelsWithImage   int            `json:"modelsWithImage" yaml:"models_with_image"`
	MatchedBy         map[string]int `json:"matchedBy" yaml:"matched_by"`
	AliasBackfilled   int            `json:"aliasBackfilled" yaml:"alias_backfilled"`
	ImageOnly         int            `json:"imageOnly" yaml:"image_only"`
	FallbackImages    int            `json:"fallbackImages" yaml:"fallback_images"`
}
