package tiers

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/autoatlas/autoatlas/internal/matcher"
	"github.com/autoatlas/autoatlas/pkg/logos"
)

// Curated brand sets. A slug may belong to several and every membership counts.
var (
	legendary = set(
		"toyota", "volkswagen", "ford", "chevrolet", "honda", "nissan", "bmw",
		"mercedes-benz", "audi", "hyundai", "kia", "renault", "peugeot", "fiat",
		"jeep", "tesla", "volvo", "subaru", "mazda", "lexus", "porsche", "mini",
		"land-rover", "jaguar", "seat", "skoda", "citroen",
	)
	global = set(
		"opel", "dacia", "suzuki", "mitsubishi", "ram", "cadillac", "buick", "gmc",
		"chrysler", "dodge", "lincoln", "acura", "infiniti", "genesis", "alfa-romeo",
		"saab", "mg", "cupra", "saic-motor", "chery", "geely", "byd", "great-wall",
		"dongfeng", "faw", "changan", "haval", "baic-motor", "jac", "jmc", "tata",
		"mahindra", "proton", "perodua", "vinfast", "wuling", "jetour", "omoda",
		"bestune", "gac-group",
	)
	premium = set(
		"ferrari", "lamborghini", "bugatti", "bentley", "rolls-royce", "mclaren",
		"aston-martin", "maserati", "pagani", "koenigsegg", "rimac", "lotus",
		"polestar", "lucid", "rivian", "hennessey", "ruf", "brabus", "mansory",
		"maybach", "alpina",
	)
	regional = set(
		"gaz", "uaz", "lada", "zastava", "zaz", "skoda", "seat", "ds", "daihatsu",
		"isuzu", "ikco", "iran-khodro", "chery", "geely", "proton", "perodua",
		"mahindra", "tata", "vinfast", "wuling", "soueast", "saipa", "roewe",
		"baojun", "foton", "maxus", "changan", "haval",
	)
	commercial = set(
		"scania", "man", "daf", "iveco", "mack", "kenworth", "peterbilt",
		"freightliner", "hino", "ic-bus", "setra", "irizar", "golden-dragon",
		"yutong", "sinotruk", "ud", "kamaz", "navistar", "volvo", "isuzu",
		"faw-jiefang",
	)

	commercialHint = matcher.MustNew(matcher.Regex, `(bus|truck|trucks|coach|transport|motors|motor)`,
		&matcher.Options{CaseInsensitive: true})
)

// Score weights.
const (
	weightLegendary  = 120
	weightGlobal     = 90
	weightPremium    = 70
	weightRegional   = 50
	weightCommercial = 55
	weightHint       = 20
	weightShortName  = 15
	penaltyLocal     = 5
	penaltyPerChar   = 0.8
	maxLengthPenalty = 20
)

func set(slugs ...string) map[string]bool {
	m := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		m[s] = true
	}
	return m
}

// shortAndRecognizable: at most nine ASCII letters in at most two words.
func shortAndRecognizable(name string) bool {
	letters := 0
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return letters <= 9 && len(words) <= 2
}

// Score is the popularity heuristic behind both tier assignments.
// Higher means more widely recognized.
func Score(logo logos.Logo) float64 {
	slug := strings.ToLower(logo.Slug)
	score := 0.0

	if legendary[slug] {
		score += weightLegendary
	}
	if global[slug] {
		score += weightGlobal
	}
	if premium[slug] {
		score += weightPremium
	}
	if regional[slug] {
		score += weightRegional
	}
	if commercial[slug] {
		score += weightCommercial
	}

	if commercialHint.Match(slug) {
		score += weightHint
	}
	if shortAndRecognizable(logo.Name) {
		score += weightShortName
	}
	if logo.IsLocal {
		score -= penaltyLocal
	}

	score -= math.Min(float64(utf8.RuneCountInString(logo.Name))*penaltyPerChar, maxLengthPenalty)
	return score
}
