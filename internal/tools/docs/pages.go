package docs

import (
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

func (g *Generator) t(key string, vars map[string]any) string {
	return g.messages.Translate(g.locale, key, vars)
}

func (g *Generator) renderCatalogIndex(m *Markdown, ix *specs.Index, meta []tiers.Tier, groups map[tiers.ID][]logos.Logo) {
	stats := ix.Stats()
	logoCount := 0
	for _, members := range groups {
		logoCount += len(members)
	}

	m.HugoFrontMatter(g.t("hero.title", nil), 1, WithDescription(g.t("hero.subtitle", nil)))
	m.H1(g.t("hero.title", nil))
	m.PlainText(g.t("hero.subtitle", nil)).LF()

	m.H2("Statistics")
	m.Table([]string{"Metric", "Value"}, [][]string{
		{"Brands", strconv.Itoa(stats.Brands)},
		{"Models", strconv.Itoa(stats.Models)},
		{"Synthesized models", strconv.Itoa(stats.SynthesizedModels)},
		{"Generations", strconv.Itoa(stats.Generations)},
		{"Generations with image", strconv.Itoa(stats.ImagedGenerations)},
		{"Logos", strconv.Itoa(logoCount)},
		{"Tiers", strconv.Itoa(len(meta))},
	})

	m.H2("Browse")
	m.BulletList(
		md.Link(g.t("counts.brands", map[string]any{"count": stats.Brands}), "brands/"),
		md.Link(g.t("learn.title", nil), "tiers/"),
	)
	m.Footer("", "")
}

func (g *Generator) renderBrandIndex(m *Markdown, ix *specs.Index) {
	brands := ix.Brands()
	m.HugoFrontMatter("Brands", 10, WithDescription(g.t("counts.brands", map[string]any{"count": len(brands)})))
	m.H1("Brands")

	rows := make([][]string, 0, len(brands))
	for _, b := range brands {
		visible := b.VisibleModels()
		gens := 0
		for _, mod := range visible {
			gens += len(mod.Generations)
		}
		rows = append(rows, []string{
			md.Link(b.Name, b.Key+"/"),
			strconv.Itoa(len(visible)),
			strconv.Itoa(gens),
		})
	}
	if len(rows) == 0 {
		m.Blockquote(g.t("empty.noModelsToShow", nil))
	} else {
		m.Table([]string{"Brand", "Models", "Generations"}, rows)
	}
	m.Footer("Catalog", "../")
}

func (g *Generator) renderBrand(m *Markdown, b *specs.Brand) {
	visible := b.VisibleModels()
	m.HugoFrontMatter(b.Name, 0, WithDescription(countText(len(visible), "model", "models")))
	m.H1(b.Name)

	if len(visible) == 0 {
		m.Blockquote(g.t("empty.noModelsToShow", nil))
		m.Footer("Brands", "../")
		return
	}

	for _, mod := range visible {
		src, _ := specs.ImageSrc(mod.RepresentativeImage)
		m.H2(mod.Name)
		if mod.Years != "" {
			m.PlainText(md.Italic(mod.Years)).LF()
		}
		if src != "" {
			m.PlainText(md.Image(mod.Name, src)).LF()
		}

		if len(mod.Generations) == 0 {
			m.PlainText(g.t("model.noGenerations", nil)).LF()
			continue
		}
		m.H3(g.t("model.generations", nil))
		rows := make([][]string, 0, len(mod.Generations))
		for _, gen := range mod.Generations {
			img := gen.Image
			genSrc, _ := specs.ImageSrc(&img)
			rows = append(rows, []string{gen.Name, orDash(gen.Years), imageCell(gen.Name, genSrc)})
		}
		m.Table([]string{"Generation", "Years", "Image"}, rows)
	}
	m.Footer("Brands", "../")
}

func (g *Generator) renderTierIndex(m *Markdown, meta []tiers.Tier, groups map[tiers.ID][]logos.Logo) {
	m.HugoFrontMatter(g.t("learn.title", nil), 20, WithDescription(g.t("learn.subtitle", nil)))
	m.H1(g.t("learn.title", nil))
	m.PlainText(g.t("learn.subtitle", nil)).LF()

	rows := make([][]string, 0, len(meta))
	for _, t := range meta {
		rows = append(rows, []string{
			g.t("tier.levelBadge", map[string]any{"level": t.Level}),
			md.Link(t.Label, string(t.ID)+"/"),
			t.Difficulty,
			g.t("counts.logos", map[string]any{"count": len(groups[t.ID])}),
		})
	}
	m.Table([]string{"Level", "Tier", "Difficulty", "Logos"}, rows)
	m.Footer("Catalog", "../")
}

func (g *Generator) renderTier(m *Markdown, t tiers.Tier, weight int, members []logos.Logo) {
	m.HugoFrontMatter(t.Label, weight, WithDescription(t.Description))
	m.H1(g.t("tier.levelBadge", map[string]any{"level": t.Level}) + ": " + t.Label)
	m.PlainText(t.Description).LF()
	m.Blockquote(t.Hint)

	if len(members) == 0 {
		m.PlainText(g.t("counts.logos", map[string]any{"count": 0})).LF()
		m.Footer(g.t("tier.backToLevels", nil), "../")
		return
	}

	rows := make([][]string, 0, len(members))
	for _, l := range members {
		rows = append(rows, []string{
			imageCell(g.t("dialog.logoOf", map[string]any{"name": l.Name}), g.assets.URL(l.Images.Thumb)),
			l.Name,
			md.Code(l.Slug),
		})
	}
	m.Table([]string{"Logo", "Name", "Slug"}, rows)
	m.Footer(g.t("tier.backToLevels", nil), "../")
}
