package specs

import (
	"strings"
)

// Generation match weights. The values reproduce the dataset's historical
// matching behavior and are not tuned.
const (
	scoreSlugKeyEqual    = 100
	scoreBaseKeyEqual    = 90
	scorePerSharedToken  = 10
	scoreSharedNumeric   = 20
	scoreTokenSubset     = 30
	scoreKeyContainment  = 15
	scoreNameContainment = 10
	scoreAliasMatch      = 35
)

// ScoreModelForGeneration rates how likely a generation row belongs to a model.
// The score is additive and every signal is evaluated.
func ScoreModelForGeneration(m *Model, rec RawRecord) int {
	return scoreWithAliases(ModelAliases, m, rec)
}

func scoreWithAliases(aliases map[string]map[string][]string, m *Model, rec RawRecord) int {
	slugKey := modelKeyFromGenerationRecord(rec)
	baseKey := generationBaseKey(rec)
	nameKey := NormalizeKey(rec.Name)

	score := 0
	if m.Key != "" && m.Key == slugKey {
		score += scoreSlugKeyEqual
	}
	// The generation name is compared with its brand prefix and year tail stripped.
	if m.Key != "" && m.Key == baseKey {
		score += scoreBaseKeyEqual
	}

	genTokens := newTokenSet(nameKey, slugKey)
	modelTokens := newTokenSet(NormalizeKey(m.Name), m.Key)
	shared := genTokens.shared(modelTokens)
	score += scorePerSharedToken * len(shared)
	if anyNumeric(shared) {
		score += scoreSharedNumeric
	}
	if genTokens.subsetOf(modelTokens) || modelTokens.subsetOf(genTokens) {
		score += scoreTokenSubset
	}

	if m.Key != "" && slugKey != "" && (strings.Contains(m.Key, slugKey) || strings.Contains(slugKey, m.Key)) {
		score += scoreKeyContainment
	}

	modelName := strings.ToLower(strings.TrimSpace(m.Name))
	genName := strings.ToLower(strings.TrimSpace(rec.Name))
	if modelName != "" && genName != "" && (strings.Contains(modelName, genName) || strings.Contains(genName, modelName)) {
		score += scoreNameContainment
	}

	if aliasHit(aliases, m.BrandKey, m.Key, nameKey) {
		score += scoreAliasMatch
	}
	return score
}

// scoreFileForModel rates an image filename against a model. Brand tokens are
// ignored and the file must share at least one token with the model name.
// Extra tokens, typically a generation name, add to the score when shared.
func scoreFileForModel(m *Model, brandTokens tokenSet, file string, extra ...string) int {
	fileKey := NormalizeKey(humanizeFilename(file))
	fileTokens := newTokenSet(fileKey).without(brandTokens)
	if len(fileTokens) == 0 {
		return 0
	}

	nameTokens := newTokenSet(NormalizeKey(m.Name)).without(brandTokens)
	if len(fileTokens.shared(nameTokens)) == 0 {
		return 0
	}

	modelTokens := newTokenSet(NormalizeKey(m.Name), m.Key).without(brandTokens)
	shared := fileTokens.shared(modelTokens)
	score := scorePerSharedToken * len(shared)
	if anyNumeric(shared) {
		score += scoreSharedNumeric
	}
	if modelTokens.subsetOf(fileTokens) {
		score += scoreTokenSubset
	}
	if m.Key != "" && strings.Contains(fileKey, m.Key) {
		score += scoreKeyContainment
	}

	if len(extra) > 0 {
		extraTokens := newTokenSet(extra...).without(brandTokens).without(modelTokens)
		score += scorePerSharedToken * len(fileTokens.shared(extraTokens))
	}
	return score
}
