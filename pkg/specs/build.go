package specs

import (
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/logging"
)

// ImageDirectory lists the locally stored images of a brand.
// Paths are relative to the image root, e.g. "BMW/bmw_z3_coupe.jpg".
type ImageDirectory interface {
	BrandImages(brandName string) []string
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	images    ImageDirectory
	logger    *zerolog.Logger
	aliases   map[string]map[string][]string
	overrides map[string]map[string]Override
}

// WithImageDirectory enables the image-only synthesis and fallback image passes.
func WithImageDirectory(dir ImageDirectory) Option {
	return func(c *buildConfig) {
		c.images = dir
	}
}

// WithLogger sets the logger used for pass summaries.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAliases replaces the model alias table.
func WithAliases(aliases map[string]map[string][]string) Option {
	return func(c *buildConfig) {
		c.aliases = aliases
	}
}

// WithOverrides replaces the generation override table.
func WithOverrides(overrides map[string]map[string]Override) Option {
	return func(c *buildConfig) {
		c.overrides = overrides
	}
}

type builder struct {
	cfg *buildConfig
	log *zerolog.Logger

	records    []RawRecord
	brands     map[string]*Brand
	brandOrder []*Brand
	models     map[string]*Model

	// owner of every attached generation
	owners map[*Generation]*Model
	// generation holding each generation row, by record index
	recordGen map[int]*Generation
	// generation row indices per brand key, in input order
	brandGenRecords map[string][]int

	stats Stats
}

// Build reconciles scraped records into an Index. It is deterministic for a
// given record list and image directory and never fails.
func Build(records []RawRecord, opts ...Option) *Index {
	cfg := &buildConfig{
		logger:    logging.Default(),
		aliases:   ModelAliases,
		overrides: GenerationOverrides,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	b := &builder{
		cfg:             cfg,
		log:             cfg.logger,
		records:         records,
		brands:          make(map[string]*Brand),
		models:          make(map[string]*Model),
		owners:          make(map[*Generation]*Model),
		recordGen:       make(map[int]*Generation),
		brandGenRecords: make(map[string][]int),
		stats:           Stats{MatchedBy: make(map[string]int)},
	}

	b.registerBrandsAndModels()
	b.attachGenerations()
	b.backfillAliases()
	if cfg.images != nil {
		files := newFileCache(cfg.images)
		b.synthesizeFromImages(files)
		b.attachFallbackImages(files)
	}
	b.selectRepresentativeImages()
	return b.finalize()
}

func (b *builder) register(brand *Brand, m *Model) {
	b.models[m.ID] = m
	brand.Models = append(brand.Models, m)
}

// registerBrandsAndModels upserts every brand and creates models for Model rows.
func (b *builder) registerBrandsAndModels() {
	for i, rec := range b.records {
		brandKey := NormalizeKey(rec.Brand)
		brand, ok := b.brands[brandKey]
		if !ok {
			brand = &Brand{Name: rec.Brand, Key: brandKey}
			b.brands[brandKey] = brand
			b.brandOrder = append(b.brandOrder, brand)
		}

		switch rec.Category {
		case CategoryGeneration:
			b.brandGenRecords[brandKey] = append(b.brandGenRecords[brandKey], i)
		case CategoryModel:
			key := modelKeyFromModelRecord(rec)
			id := modelID(brandKey, key)
			if _, seen := b.models[id]; seen {
				continue
			}
			name := cleanModelName(rec.Name, rec.Brand)
			if name == "" {
				name = rec.Name
			}
			b.register(brand, &Model{
				ID:       id,
				Name:     name,
				Years:    rec.Years,
				Brand:    brand.Name,
				BrandKey: brandKey,
				Key:      key,
				Source:   SourceModel,
			})
		}
	}
	b.log.Debug().
		Int("brands", len(b.brands)).
		Int("models", len(b.models)).
		Msg("Registered brands and models")
}

// attachGenerations runs every generation row through the match chain.
func (b *builder) attachGenerations() {
	for _, brand := range b.brandOrder {
		for _, idx := range b.brandGenRecords[brand.Key] {
			rec := b.records[idx]
			for _, s := range matchChain {
				m := s.match(b, brand, rec)
				if m == nil {
					continue
				}
				b.stats.MatchedBy[s.name]++
				b.recordGen[idx] = b.addGeneration(m, newGeneration(m, rec))
				break
			}
		}
	}
	b.log.Debug().
		Interface("matched_by", b.stats.MatchedBy).
		Msg("Attached generations")
}

func newGeneration(m *Model, rec RawRecord) *Generation {
	return &Generation{
		ID:    m.ID + ":" + NormalizeKey(rec.Name),
		Name:  rec.Name,
		Years: rec.Years,
		Image: Image{
			Local: normalizeLocalImagePath(rec.LocalImage),
			URL:   nonEmpty(rec.ImageURL),
		},
		ModelKey: m.Key,
		BrandKey: m.BrandKey,
	}
}

// addGeneration attaches g to m unless m already holds a generation with the
// same normalized name and years. An imageless duplicate takes over the
// incoming image. The returned generation is the one m keeps.
func (b *builder) addGeneration(m *Model, g *Generation) *Generation {
	key := NormalizeKey(g.Name)
	for _, existing := range m.Generations {
		if existing.Years != g.Years || NormalizeKey(existing.Name) != key {
			continue
		}
		if !existing.Image.HasAny() && g.Image.HasAny() {
			existing.Name = g.Name
			existing.Image = g.Image
		}
		return existing
	}
	g.ID = m.ID + ":" + key
	g.ModelKey = m.Key
	g.BrandKey = m.BrandKey
	m.Generations = append(m.Generations, g)
	b.owners[g] = m
	return g
}

func (b *builder) detach(g *Generation) {
	owner := b.owners[g]
	if owner == nil {
		return
	}
	for i, existing := range owner.Generations {
		if existing == g {
			owner.Generations = append(owner.Generations[:i], owner.Generations[i+1:]...)
			break
		}
	}
	delete(b.owners, g)
}

// backfillAliases moves generation rows matching a model's override patterns
// into that model, creating the model when the dataset has no Model row for it.
func (b *builder) backfillAliases() {
	for _, o := range compileOverrides(b.cfg.overrides) {
		brand, ok := b.brands[o.brandKey]
		if !ok {
			continue
		}
		target := b.models[modelID(o.brandKey, o.modelKey)]

		for _, idx := range b.brandGenRecords[o.brandKey] {
			rec := b.records[idx]
			if !o.patterns.Match(generationBaseKey(rec)) {
				continue
			}
			g := b.recordGen[idx]
			if g == nil {
				continue
			}
			// An explicit model already covered by the patterns keeps its match.
			if owner := b.owners[g]; owner != nil && owner != target &&
				owner.Source == SourceModel && o.patterns.Match(owner.Key) {
				continue
			}
			if target == nil {
				target = &Model{
					ID:       modelID(o.brandKey, o.modelKey),
					Name:     o.name,
					Years:    rec.Years,
					Brand:    brand.Name,
					BrandKey: o.brandKey,
					Key:      o.modelKey,
					Source:   SourceModel,
				}
				b.register(brand, target)
			}
			if b.owners[g] == target {
				continue
			}

			b.detach(g)
			kept := b.addGeneration(target, g)
			if kept != g {
				for i, held := range b.recordGen {
					if held == g {
						b.recordGen[i] = kept
					}
				}
			}
			b.stats.AliasBackfilled++
		}
	}

	dropped := 0
	for _, brand := range b.brandOrder {
		kept := brand.Models[:0]
		for _, m := range brand.Models {
			if m.Source == SourceGeneration && len(m.Generations) == 0 {
				delete(b.models, m.ID)
				dropped++
				continue
			}
			kept = append(kept, m)
		}
		brand.Models = kept
	}
	b.log.Debug().
		Int("moved", b.stats.AliasBackfilled).
		Int("dropped_models", dropped).
		Msg("Backfilled alias generations")
}

// fileCache memoizes directory listings per brand.
type fileCache struct {
	dir   ImageDirectory
	files map[string][]string
}

func newFileCache(dir ImageDirectory) *fileCache {
	return &fileCache{dir: dir, files: make(map[string][]string)}
}

func (c *fileCache) brandImages(brand *Brand) []string {
	files, ok := c.files[brand.Key]
	if !ok {
		files = c.dir.BrandImages(brand.Name)
		sort.Strings(files)
		c.files[brand.Key] = files
	}
	return files
}

type scoredFile struct {
	file  string
	score int
}

func rankFiles(files []string, score func(string) int) []scoredFile {
	var ranked []scoredFile
	for _, f := range files {
		if s := score(f); s > 0 {
			ranked = append(ranked, scoredFile{file: f, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// synthesizeFromImages gives models without generations one generation per
// matching image file, up to a fixed cap.
func (b *builder) synthesizeFromImages(files *fileCache) {
	for _, brand := range b.brandOrder {
		brandTokens := newTokenSet(brand.Key)
		for _, m := range brand.Models {
			if len(m.Generations) > 0 {
				continue
			}
			candidates := files.brandImages(brand)
			if len(candidates) == 0 {
				break
			}
			ranked := rankFiles(candidates, func(f string) int {
				return scoreFileForModel(m, brandTokens, f)
			})
			if len(ranked) > constants.MaxSynthesizedImages {
				ranked = ranked[:constants.MaxSynthesizedImages]
			}
			for _, r := range ranked {
				local := r.file
				name := humanizeFilename(r.file)
				b.addGeneration(m, &Generation{
					Name:  name,
					Image: Image{Local: &local},
				})
				b.stats.ImageOnly++
			}
		}
	}
	b.log.Debug().Int("generations", b.stats.ImageOnly).Msg("Synthesized image-only generations")
}

// attachFallbackImages gives every generation without a local image the best
// matching file from its brand folder.
func (b *builder) attachFallbackImages(files *fileCache) {
	for _, brand := range b.brandOrder {
		brandTokens := newTokenSet(brand.Key)
		for _, m := range brand.Models {
			for _, g := range m.Generations {
				if g.Image.Local != nil {
					continue
				}
				candidates := files.brandImages(brand)
				if len(candidates) == 0 {
					break
				}
				genKey := NormalizeKey(g.Name)
				ranked := rankFiles(candidates, func(f string) int {
					return scoreFileForModel(m, brandTokens, f, genKey)
				})
				if len(ranked) == 0 {
					continue
				}
				local := ranked[0].file
				g.Image.Local = &local
				b.stats.FallbackImages++
			}
		}
	}
	b.log.Debug().Int("generations", b.stats.FallbackImages).Msg("Attached fallback images")
}

const hexDigits = "0123456789abcdefABCDEF"

// hashLike reports whether s looks like a content hash suffix.
func hashLike(s string) bool {
	if len(s) < 6 || strings.Trim(s, hexDigits) != "" {
		return false
	}
	return strings.ContainsAny(s, "0123456789")
}

// humanizeFilename turns "bmw_z3_coupe_3fa9c1d2.jpg" into "bmw z3 coupe".
func humanizeFilename(file string) string {
	base := path.Base(file)
	name := strings.TrimSuffix(base, path.Ext(base))
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	for {
		idx := strings.LastIndexAny(name, " -")
		if idx <= 0 || !hashLike(name[idx+1:]) {
			return name
		}
		name = strings.TrimRight(name[:idx], " -")
	}
}

// selectRepresentativeImages picks the image of the most recent imaged generation.
func (b *builder) selectRepresentativeImages() {
	for _, brand := range b.brandOrder {
		for _, m := range brand.Models {
			m.RepresentativeImage = representativeImage(m.Generations)
		}
	}
}

func representativeImage(gens []*Generation) *Image {
	var best *Generation
	var bestYears YearRange
	for _, g := range gens {
		if !g.Image.HasAny() {
			continue
		}
		yr := ParseYears(g.Years)
		if best == nil || yr.End > bestYears.End || (yr.End == bestYears.End && yr.Start > bestYears.Start) {
			best, bestYears = g, yr
		}
	}
	if best == nil {
		return nil
	}
	img := best.Image
	return &img
}

// finalize drops keyless models and sorts models and brands by name.
func (b *builder) finalize() *Index {
	col := collate.New(language.English, collate.IgnoreCase)
	byName := func(a, c string) bool {
		if cmp := col.CompareString(a, c); cmp != 0 {
			return cmp < 0
		}
		return a < c
	}

	brands := make([]*Brand, 0, len(b.brandOrder))
	for _, brand := range b.brandOrder {
		models := make([]*Model, 0, len(brand.Models))
		for _, m := range brand.Models {
			if m.Key != "" {
				models = append(models, m)
			}
		}
		sort.SliceStable(models, func(i, j int) bool {
			return byName(models[i].Name, models[j].Name)
		})
		brand.Models = models
		brands = append(brands, brand)
	}
	sort.SliceStable(brands, func(i, j int) bool {
		return byName(brands[i].Name, brands[j].Name)
	})

	ix := newIndex(brands, b.stats)
	b.log.Debug().
		Int("brands", ix.stats.Brands).
		Int("models", ix.stats.Models).
		Int("generations", ix.stats.Generations).
		Msg("Specs index built")
	return ix
}
