package specs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

const sampleJSONL = `{"category":"Model","url":"https://example.com/bmw/z3.html","brand":"BMW","name":"BMW Z3 Generations","years":"1995-2002"}
not json at all
{"category":"Generation","url":"https://example.com/bmw/z3-1995.html","brand":"BMW","name":"BMW Z3 Roadster","years":"1995-2002","image_url":"https://cdn.example/z3.jpg","local_image":"/scrape/ultimatespecs_images/BMW/z3.jpg"}

{"category":"Generation","brand":"BMW","name":"BMW Z3 Coupe","years":"1998-2002","image_url":null}
`

func TestLoadRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "public/ultimatespecs_complete_db.jsonl", []byte(sampleJSONL), 0o644))

	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	records := specs.LoadRecords(ctx, fs, specs.DefaultRecordPaths("public")...)
	require.Len(t, records, 3)
	assert.Equal(t, specs.CategoryModel, records[0].Category)
	assert.Equal(t, "BMW Z3 Roadster", records[1].Name)
	require.NotNil(t, records[1].LocalImage)
	assert.Nil(t, records[2].ImageURL)
	assert.True(t, tl.Contains(`"skipped":1`))
}

func TestLoadRecordsSkipsOversizedLine(t *testing.T) {
	long := `{"category":"Model","brand":"X","name":"` + strings.Repeat("x", 5<<20) + `"}`
	content := `{"category":"Model","brand":"Lotus","name":"Lotus Elise"}` + "\n" +
		long + "\n" +
		`{"category":"Model","brand":"Scania","name":"Scania R Series"}`

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "db.jsonl", []byte(content), 0o644))

	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	records := specs.LoadRecords(ctx, fs, "db.jsonl")
	require.Len(t, records, 2)
	assert.Equal(t, "Lotus", records[0].Brand)
	assert.Equal(t, "Scania", records[1].Brand)
	assert.True(t, tl.Contains(`"skipped":1`))
}

func TestLoadRecordsFirstCandidateWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "b.jsonl", []byte(`{"category":"Model","brand":"B","name":"B1"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "c.jsonl", []byte(`{"category":"Model","brand":"C","name":"C1"}`), 0o644))

	records := specs.LoadRecords(context.Background(), fs, "a.jsonl", "b.jsonl", "c.jsonl")
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].Brand)
}

func TestLoadRecordsMissingFile(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	records := specs.LoadRecords(ctx, afero.NewMemMapFs(), "missing.jsonl")
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.True(t, tl.Contains(`"level":"warn"`))

	ix := specs.Build(records, specs.WithLogger(logging.NewNopLogger()))
	assert.Empty(t, ix.Brands())
}

func TestLoadRecordsEndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "db.jsonl", []byte(sampleJSONL), 0o644))

	ix := specs.Build(specs.LoadRecords(context.Background(), fs, "db.jsonl"), specs.WithLogger(logging.NewNopLogger()))
	m, ok := ix.Model("bmw", "z3")
	require.True(t, ok)
	assert.Len(t, m.Generations, 2)
	require.NotNil(t, m.RepresentativeImage)
	assert.Equal(t, "BMW/z3.jpg", *m.RepresentativeImage.Local)
}

func TestDefaultRecordPaths(t *testing.T) {
	paths := specs.DefaultRecordPaths("")
	require.Len(t, paths, 4)
	assert.Equal(t, "public/ultimatespecs_complete_db.jsonl", paths[0])
	assert.Equal(t, "ultimatespecs_complete_db.jsonl", paths[1])
}
