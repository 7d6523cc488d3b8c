// Package logos loads the car brand logo catalog.
//
// Two sources are merged: the bulk logo dataset and a small locally curated
// list. Logos that depict a model line or performance sub-brand rather than a
// manufacturer are excluded, and slugs are deduplicated case-insensitively
// with the first occurrence winning.
package logos

import (
	"context"
	"encoding/json"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
)

// Images holds the public paths of a logo in each size.
type Images struct {
	Thumb     string `json:"thumb" yaml:"thumb"`
	Optimized string `json:"optimized" yaml:"optimized"`
	Original  string `json:"original" yaml:"original"`
}

// Logo is a brand logo. It is never mutated after Load.
type Logo struct {
	Name    string `json:"name" yaml:"name"`
	Slug    string `json:"slug" yaml:"slug"`
	Images  Images `json:"images" yaml:"images"`
	IsLocal bool   `json:"isLocal" yaml:"is_local"`
}

// Size selects one of a logo's images.
type Size string

// Logo sizes.
const (
	SizeThumb     Size = "thumb"
	SizeOptimized Size = "optimized"
	SizeOriginal  Size = "original"
)

// Image returns the path for a size, defaulting to the optimized image.
func (l Logo) Image(size Size) string {
	switch size {
	case SizeThumb:
		return l.Images.Thumb
	case SizeOriginal:
		return l.Images.Original
	default:
		return l.Images.Optimized
	}
}

type datasetLogo struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image struct {
		LocalThumb     string `json:"localThumb"`
		LocalOptimized string `json:"localOptimized"`
		LocalOriginal  string `json:"localOriginal"`
	} `json:"image"`
}

type localLogo struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	FileName string `json:"fileName"`
}

const (
	datasetFile = "logos/data.json"
	localFile   = "local-logos/metadata.json"

	datasetBasePath = "/" + constants.LogoDatasetDir + "/logos"
	localBasePath   = "/" + constants.LogoDatasetDir + "/local-logos"
)

// Load reads both logo sources under dataRoot. A missing or malformed source
// contributes no logos and logs a warning.
func Load(ctx context.Context, fs afero.Fs, dataRoot string) []Logo {
	log := logging.FromContext(ctx)
	root := filepath.Join(dataRoot, constants.LogoDatasetDir)

	var dataset []datasetLogo
	if err := readJSON(fs, root, datasetFile, &dataset); err != nil {
		log.Warn().Err(err).Msg("Logo dataset unavailable")
	}
	var locals []localLogo
	if err := readJSON(fs, root, localFile, &locals); err != nil {
		log.Warn().Err(err).Msg("Local logos unavailable")
	}

	merged := make([]Logo, 0, len(dataset)+len(locals))
	for _, d := range dataset {
		if Excluded(d.Slug, d.Name) {
			continue
		}
		merged = append(merged, Logo{
			Name: d.Name,
			Slug: d.Slug,
			Images: Images{
				Thumb:     datasetPath(d.Image.LocalThumb),
				Optimized: datasetPath(d.Image.LocalOptimized),
				Original:  datasetPath(d.Image.LocalOriginal),
			},
		})
	}
	for _, l := range locals {
		if Excluded(l.Slug, l.Name) {
			continue
		}
		p := localBasePath + "/" + l.FileName
		merged = append(merged, Logo{
			Name:    l.Name,
			Slug:    l.Slug,
			Images:  Images{Thumb: p, Optimized: p, Original: p},
			IsLocal: true,
		})
	}

	logos := Dedupe(merged)
	log.Debug().
		Int("dataset", len(dataset)).
		Int("local", len(locals)).
		Int("logos", len(logos)).
		Msg("Loaded logos")
	return logos
}

// readJSON decodes root/rel, falling back to the same file one level up.
func readJSON(fs afero.Fs, root, rel string, v any) error {
	target := filepath.Join(root, filepath.FromSlash(rel))
	if ok, _ := afero.Exists(fs, target); !ok {
		alt := filepath.Join("..", root, filepath.FromSlash(rel))
		if ok, _ := afero.Exists(fs, alt); !ok {
			return errors.NewNotFoundError("file", target)
		}
		target = alt
	}
	raw, err := afero.ReadFile(fs, target)
	if err != nil {
		return errors.WrapIO("read", target, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.WrapParse("json", target, err)
	}
	return nil
}

var leadingDotsSlashes = regexp.MustCompile(`^[./\\]+`)

// datasetPath makes a dataset-relative image path public.
func datasetPath(value string) string {
	cleaned := strings.ReplaceAll(leadingDotsSlashes.ReplaceAllString(value, ""), `\`, "/")
	return path.Join(datasetBasePath, cleaned)
}

// Dedupe keeps the first logo per case-insensitive slug.
func Dedupe(logos []Logo) []Logo {
	seen := make(map[string]bool, len(logos))
	out := make([]Logo, 0, len(logos))
	for _, l := range logos {
		key := strings.ToLower(l.Slug)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}

// Find returns the logo with the given slug, compared case-insensitively.
func Find(logos []Logo, slug string) (Logo, bool) {
	for _, l := range logos {
		if strings.EqualFold(l.Slug, slug) {
			return l, true
		}
	}
	return Logo{}, false
}
