package tiers

import (
	"math"
	"sort"

	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/logos"
)

// GroupByTier ranks logos by Score and splits them into tierCount contiguous
// buckets of equal size. The first tier holds the highest scores and equal
// scores keep their input order. Every tier id in range is present in the
// result, possibly with no logos. A tierCount outside 1..8 means 8.
func GroupByTier(all []logos.Logo, tierCount int) map[ID][]logos.Logo {
	n := clampCount(tierCount)
	ids := IDs()[:n]

	grouped := make(map[ID][]logos.Logo, n)
	for _, id := range ids {
		grouped[id] = []logos.Logo{}
	}

	type scored struct {
		logo  logos.Logo
		score float64
	}
	ranked := make([]scored, len(all))
	for i, l := range all {
		ranked[i] = scored{logo: l, score: Score(l)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	total := len(ranked)
	if total == 0 {
		total = 1
	}
	for i, r := range ranked {
		bucket := i * n / total
		if bucket > n-1 {
			bucket = n - 1
		}
		grouped[ids[bucket]] = append(grouped[ids[bucket]], r.logo)
	}
	return grouped
}

// TierID classifies one logo by its absolute score. The score is clamped to
// the fixed bounds, normalized to [0,1] and inverted so higher scores land in
// earlier tiers. total is the number of tiers considered; 0 means all.
func TierID(logo logos.Logo, total int) ID {
	ids := IDs()
	if total <= 0 {
		total = len(ids)
	}

	span := float64(constants.MaxPopularityScore - constants.MinPopularityScore)
	normalized := (Score(logo) - constants.MinPopularityScore) / span
	normalized = math.Max(0, math.Min(1, normalized))

	index := total - 1 - int(math.Floor(normalized*float64(total-1)+0.5))
	if index < 0 || index >= len(ids) {
		return ids[len(ids)-1]
	}
	return ids[index]
}
