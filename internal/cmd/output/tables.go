package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/quiz"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// BrandsTable converts brands to table rows.
func BrandsTable(brands []*specs.Brand) Data {
	data := Data{
		Headers:         []string{"Key", "Name", "Models", "Generations"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight},
	}
	for _, b := range brands {
		visible := b.VisibleModels()
		gens := 0
		for _, m := range visible {
			gens += len(m.Generations)
		}
		data.Rows = append(data.Rows, []string{
			b.Key, b.Name, strconv.Itoa(len(visible)), strconv.Itoa(gens),
		})
	}
	return data
}

// ModelsTable converts a brand's visible models to table rows. Wide adds the
// source and image columns.
func ModelsTable(models []*specs.Model, wide bool) Data {
	data := Data{Headers: []string{"ID", "Name", "Years", "Generations"}}
	if wide {
		data.Headers = append(data.Headers, "Source", "Image")
	}
	for _, m := range models {
		row := []string{m.ID, m.Name, m.Years, strconv.Itoa(len(m.Generations))}
		if wide {
			src, _ := specs.ImageSrc(m.RepresentativeImage)
			row = append(row, string(m.Source), src)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// LogosTable converts logos to table rows.
func LogosTable(all []logos.Logo, tierCount int, wide bool) Data {
	data := Data{Headers: []string{"Slug", "Name", "Tier"}}
	if wide {
		data.Headers = append(data.Headers, "Score", "Local", "Image")
	}
	for _, l := range all {
		row := []string{l.Slug, l.Name, string(tiers.TierID(l, tierCount))}
		if wide {
			row = append(row,
				strconv.FormatFloat(tiers.Score(l), 'f', 1, 64),
				strconv.FormatBool(l.IsLocal),
				l.Images.Optimized,
			)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// TierRow is a tier with the number of logos grouped into it.
type TierRow struct {
	tiers.Tier `yaml:",inline"`
	Count      int `json:"count" yaml:"count"`
}

// TierRows pairs tier metadata with group sizes.
func TierRows(meta []tiers.Tier, groups map[tiers.ID][]logos.Logo) []TierRow {
	rows := make([]TierRow, 0, len(meta))
	for _, t := range meta {
		rows = append(rows, TierRow{Tier: t, Count: len(groups[t.ID])})
	}
	return rows
}

// TiersTable converts tier rows to table rows.
func TiersTable(rows []TierRow) Data {
	data := Data{
		Headers:         []string{"ID", "Label", "Difficulty", "Logos"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{
			string(r.ID), r.Label, r.Difficulty, strconv.Itoa(r.Count),
		})
	}
	return data
}

// QuizTable converts a deck to table rows, one per question.
func QuizTable(deck quiz.Deck) Data {
	data := Data{
		Headers:         []string{"#", "Image", "Options", "Answer"},
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
	for i, q := range deck.Questions {
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(i + 1), q.Image, strings.Join(q.Options, " | "), q.Answer,
		})
	}
	return data
}

// Print writes value in format, using table when the format is tabular.
func Print(w io.Writer, format Format, table Data, value any) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table)
	}
	return NewFormatter(format).Format(w, value)
}
