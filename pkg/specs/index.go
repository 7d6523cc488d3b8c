package specs

// Index is the immutable result of Build.
type Index struct {
	brands []*Brand
	byKey  map[string]*Brand
	stats  Stats
}

func newIndex(brands []*Brand, stats Stats) *Index {
	ix := &Index{
		brands: brands,
		byKey:  make(map[string]*Brand, len(brands)),
		stats:  stats,
	}
	ix.stats.Brands = len(brands)
	for _, brand := range brands {
		ix.byKey[brand.Key] = brand
		for _, m := range brand.Models {
			ix.stats.Models++
			if m.Source == SourceGeneration {
				ix.stats.SynthesizedModels++
			}
			if m.RepresentativeImage != nil {
				ix.stats.ModelsWithImage++
			}
			for _, g := range m.Generations {
				ix.stats.Generations++
				if g.Image.HasAny() {
					ix.stats.ImagedGenerations++
				}
			}
		}
	}
	return ix
}

// Brands returns every brand sorted by name.
func (ix *Index) Brands() []*Brand {
	if ix == nil {
		return []*Brand{}
	}
	return ix.brands
}

// Brand looks up a brand by key. The key is normalized first, so display
// names work too.
func (ix *Index) Brand(key string) (*Brand, bool) {
	if ix == nil {
		return nil, false
	}
	brand, ok := ix.byKey[NormalizeKey(key)]
	return brand, ok
}

// BrandKeyFor resolves a free-text brand name to the key of an indexed brand.
func (ix *Index) BrandKeyFor(name string) (string, bool) {
	brand, ok := ix.Brand(name)
	if !ok {
		return "", false
	}
	return brand.Key, true
}

// BrandsWithModels returns the brands that have at least one model.
func (ix *Index) BrandsWithModels() []*Brand {
	out := make([]*Brand, 0, len(ix.Brands()))
	for _, brand := range ix.Brands() {
		if len(brand.Models) > 0 {
			out = append(out, brand)
		}
	}
	return out
}

// Model looks up a model within a brand. Both keys are normalized.
func (ix *Index) Model(brandKey, modelKey string) (*Model, bool) {
	brand, ok := ix.Brand(brandKey)
	if !ok {
		return nil, false
	}
	key := NormalizeKey(modelKey)
	for _, m := range brand.Models {
		if m.Key == key {
			return m, true
		}
	}
	return nil, false
}

// Stats returns summary counts for the index.
func (ix *Index) Stats() Stats {
	if ix == nil {
		return Stats{MatchedBy: map[string]int{}}
	}
	return ix.stats
}
