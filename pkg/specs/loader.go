package specs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
)

// maxRecordLine bounds a single JSONL line; longer lines are skipped.
const maxRecordLine = 4 << 20

// DefaultRecordPaths lists where the records file is looked for, in order.
func DefaultRecordPaths(dataRoot string) []string {
	if dataRoot == "" {
		dataRoot = constants.DefaultDataRoot
	}
	return []string{
		filepath.Join(dataRoot, constants.RecordsFilename),
		constants.RecordsFilename,
		filepath.Join("web", constants.DefaultDataRoot, constants.RecordsFilename),
		filepath.Join("..", constants.RecordsFilename),
	}
}

// LoadRecords reads the first existing candidate as JSONL. Lines that do not
// decode are skipped. A missing or unreadable file yields an empty slice and
// a warning so the index can still be built.
func LoadRecords(ctx context.Context, fs afero.Fs, candidates ...string) []RawRecord {
	log := logging.FromContext(ctx)

	found := ""
	for _, candidate := range candidates {
		if ok, _ := afero.Exists(fs, candidate); ok {
			found = candidate
			break
		}
	}
	if found == "" {
		log.Warn().Strs("candidates", candidates).Msg("Specs records not found, using an empty dataset")
		return []RawRecord{}
	}

	records, skipped, err := readRecords(fs, found)
	if err != nil {
		log.Warn().Err(err).Str("path", found).Msg("Failed to read specs records, using an empty dataset")
		return []RawRecord{}
	}
	log.Debug().
		Str("path", found).
		Int("records", len(records)).
		Int("skipped", skipped).
		Msg("Loaded specs records")
	return records
}

func readRecords(fs afero.Fs, path string) ([]RawRecord, int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, 0, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	var (
		records []RawRecord
		skipped int
	)
	reader := bufio.NewReader(f)
	for {
		raw, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, skipped, errors.WrapIO("read", path, readErr)
		}
		line := bytes.TrimSpace(raw)
		switch {
		case len(line) == 0:
		case len(line) > maxRecordLine:
			skipped++
		default:
			var rec RawRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				skipped++
			} else {
				records = append(records, rec)
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	if records == nil {
		records = []RawRecord{}
	}
	return records, skipped, nil
}
