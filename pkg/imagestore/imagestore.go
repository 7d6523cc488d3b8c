// Package imagestore reads locally stored model images.
//
// Images live in one folder per brand under a root directory. Folder names
// come from the scraper and do not always match the dataset's brand names,
// so brands are resolved to folders by key similarity.
package imagestore

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
}

// Store serves brand image listings and files from an afero filesystem.
type Store struct {
	fs     afero.Fs
	root   string
	logger *zerolog.Logger

	mu      sync.Mutex
	folders []string
	listed  bool
	images  map[string][]string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used when the root cannot be read.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store rooted at root.
func New(fsys afero.Fs, root string, opts ...Option) *Store {
	s := &Store{
		fs:     fsys,
		root:   root,
		logger: logging.Default(),
		images: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the image root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) brandFolders() []string {
	if s.listed {
		return s.folders
	}
	s.listed = true

	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		s.logger.Warn().Err(err).Str("root", s.root).Msg("Image root unavailable")
		return nil
	}
	for _, e := range entries {
		if e.IsDir() {
			s.folders = append(s.folders, e.Name())
		}
	}
	sort.Strings(s.folders)
	return s.folders
}

// BrandFolder resolves a brand name to its folder under the root.
func (s *Store) BrandFolder(brandName string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolveFolder(brandName, s.brandFolders())
}

// resolveFolder prefers an exact key match, then the closest folder whose key
// contains or is contained in the brand key, then the best token overlap.
func resolveFolder(brandName string, folders []string) (string, bool) {
	brandKey := specs.NormalizeKey(brandName)
	if brandKey == "" {
		return "", false
	}

	var (
		contained     string
		containedDiff = -1
		overlap       string
		overlapCount  int
	)
	brandTokens := strings.Split(brandKey, "-")
	for _, folder := range folders {
		folderKey := specs.NormalizeKey(folder)
		if folderKey == "" {
			continue
		}
		if folderKey == brandKey {
			return folder, true
		}
		if strings.Contains(folderKey, brandKey) || strings.Contains(brandKey, folderKey) {
			diff := len(folderKey) - len(brandKey)
			if diff < 0 {
				diff = -diff
			}
			if containedDiff < 0 || diff < containedDiff {
				contained, containedDiff = folder, diff
			}
			continue
		}
		if n := sharedTokens(brandTokens, strings.Split(folderKey, "-")); n > overlapCount {
			overlap, overlapCount = folder, n
		}
	}
	if contained != "" {
		return contained, true
	}
	if overlapCount > 0 {
		return overlap, true
	}
	return "", false
}

func sharedTokens(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, tok := range a {
		set[tok] = true
	}
	n := 0
	for _, tok := range b {
		if set[tok] {
			n++
			delete(set, tok)
		}
	}
	return n
}

// BrandImages lists the image files of a brand as root-relative slash paths.
// A brand without a folder has no images.
func (s *Store) BrandImages(brandName string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := resolveFolder(brandName, s.brandFolders())
	if !ok {
		return nil
	}
	if files, cached := s.images[folder]; cached {
		return append([]string(nil), files...)
	}

	entries, err := afero.ReadDir(s.fs, filepath.Join(s.root, folder))
	if err != nil {
		s.logger.Warn().Err(err).Str("folder", folder).Msg("Brand image folder unreadable")
		s.images[folder] = nil
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !imageExtensions[strings.ToLower(path.Ext(e.Name()))] {
			continue
		}
		files = append(files, path.Join(folder, e.Name()))
	}
	sort.Strings(files)
	s.images[folder] = files
	return append([]string(nil), files...)
}

// Open opens an image by its root-relative path. Paths that try to leave the
// root are rejected with an error that reports as not found.
func (s *Store) Open(rel string) (afero.File, fs.FileInfo, error) {
	clean, err := CleanPath(rel)
	if err != nil {
		return nil, nil, err
	}
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	info, err := s.fs.Stat(full)
	if err != nil || info.IsDir() {
		return nil, nil, errors.NewNotFoundError("image", clean)
	}
	f, err := s.fs.Open(full)
	if err != nil {
		return nil, nil, errors.WrapIO("open", clean, err)
	}
	return f, info, nil
}

// CleanPath validates a root-relative image path.
func CleanPath(rel string) (string, error) {
	switch {
	case rel == "":
		return "", errors.NewPathError(rel, "empty")
	case strings.Contains(rel, ".."):
		return "", errors.NewPathError(rel, "parent traversal")
	case strings.HasPrefix(rel, "/"), strings.HasPrefix(rel, `\`), filepath.IsAbs(rel):
		return "", errors.NewPathError(rel, "absolute")
	}
	return path.Clean(strings.ReplaceAll(rel, `\`, "/")), nil
}

// ContentType maps an image filename to its MIME type.
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
