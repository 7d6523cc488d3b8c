package application

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas"
	"github.com/autoatlas/autoatlas/pkg/logging"
)

// FixtureRecords is a small specs dataset used by command tests.
const FixtureRecords = `{"category":"Model","url":"https://example.com/lotus/elise.html","brand":"Lotus","name":"Lotus Elise","years":"1996-2021"}
{"category":"Generation","url":"https://example.com/lotus/elise-s2.html","brand":"Lotus","name":"Lotus Elise S2","years":"2001-2011"}
{"category":"Model","url":"https://example.com/scania/r-series.html","brand":"Scania","name":"Scania R Series","years":"2004-"}
`

// FixtureLogos is a small logo dataset used by command tests.
const FixtureLogos = `[
  {"name":"BMW","slug":"bmw","image":{"localThumb":"thumb/bmw.png","localOptimized":"optimized/bmw.png","localOriginal":"original/bmw.png"}},
  {"name":"Lotus","slug":"lotus","image":{"localThumb":"thumb/lotus.png","localOptimized":"optimized/lotus.png","localOriginal":"original/lotus.png"}},
  {"name":"Scania","slug":"scania","image":{"localThumb":"thumb/scania.png","localOptimized":"optimized/scania.png","localOriginal":"original/scania.png"}}
]`

// NewFixture returns a Mock backed by a real client over an in-memory
// filesystem holding FixtureRecords and FixtureLogos under "data".
func NewFixture(t testing.TB, opts ...autoatlas.Option) (*Mock, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "data/ultimatespecs_complete_db.jsonl", []byte(FixtureRecords), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "data/car-logos-dataset/logos/data.json", []byte(FixtureLogos), 0o644); err != nil {
		t.Fatal(err)
	}

	base := []autoatlas.Option{
		autoatlas.WithFS(fs),
		autoatlas.WithDataRoot("data"),
		autoatlas.WithLogger(logging.NewNopLogger()),
	}
	client, err := autoatlas.New(append(base, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return &Mock{
		ClientFunc:       func() (autoatlas.Client, error) { return client, nil },
		LoggerFunc:       logging.NewNopLogger,
		OutputFormatFunc: func() string { return "json" },
	}, fs
}
