// Package quiz builds shuffled question decks for the logo tier quiz and the
// per-brand model quiz.
//
// A deck is fully determined by its pool and seed, so a client that keeps
// the seed can replay the same questions in the same order.
package quiz

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// MinChoices is the number of options offered per multiple-choice question
// and the minimum pool size for the model quiz.
const MinChoices = 4

// Mode selects how questions are answered.
type Mode string

// Quiz modes.
const (
	ModeMultiple Mode = "multiple"
	ModeTyped    Mode = "typed"
)

// ParseMode parses a quiz mode. Empty means ModeMultiple.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeMultiple:
		return ModeMultiple, nil
	case ModeTyped:
		return ModeTyped, nil
	default:
		return "", errors.NewValidationError("mode", s, "must be multiple or typed")
	}
}

// ParseSeed parses a deck seed. Empty picks one from the clock.
func ParseSeed(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UnixNano(), nil
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.WrapValidation("seed", err)
	}
	return seed, nil
}

// Kind names what a deck asks about.
type Kind string

// Deck kinds.
const (
	KindTier  Kind = "tier"
	KindModel Kind = "model"
)

// Question is one deck entry. Options is empty in typed mode.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Answer  string   `json:"answer" yaml:"answer"`
	Image   string   `json:"image" yaml:"image"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Correct reports whether a typed answer matches, ignoring surrounding
// whitespace and case.
func (q Question) Correct(typed string) bool {
	return fold(typed) == fold(q.Answer)
}

// Deck is a shuffled list of questions.
type Deck struct {
	Kind      Kind       `json:"kind" yaml:"kind"`
	Subject   string     `json:"subject" yaml:"subject"`
	Mode      Mode       `json:"mode" yaml:"mode"`
	Seed      int64      `json:"seed" yaml:"seed"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Score counts correct answers. Missing answers count as wrong.
func (d Deck) Score(answers []string) int {
	n := 0
	for i, q := range d.Questions {
		if i < len(answers) && q.Correct(answers[i]) {
			n++
		}
	}
	return n
}

type item struct {
	id    string
	name  string
	image string
}

// TierDeck builds a logo quiz over one tier of groups, as returned by
// tiers.GroupByTier. Logo images are the optimized paths.
func TierDeck(groups map[tiers.ID][]logos.Logo, id tiers.ID, mode Mode, seed int64) (Deck, error) {
	members, ok := groups[id]
	if !ok || len(members) == 0 {
		return Deck{}, errors.NewNotFoundError("tier quiz", string(id))
	}
	pool := make([]item, 0, len(members))
	for _, l := range members {
		pool = append(pool, item{id: l.Slug, name: l.Name, image: l.Images.Optimized})
	}
	return Deck{
		Kind:      KindTier,
		Subject:   string(id),
		Mode:      mode,
		Seed:      seed,
		Questions: build(pool, mode, seed),
	}, nil
}

// ModelDeck builds a model quiz over the brand's visible models that have a
// representative image. At least MinChoices such models are required.
func ModelDeck(brand *specs.Brand, mode Mode, seed int64) (Deck, error) {
	var pool []item
	for _, m := range brand.VisibleModels() {
		if src, ok := specs.ImageSrc(m.RepresentativeImage); ok {
			pool = append(pool, item{id: m.ID, name: m.Name, image: src})
		}
	}
	if len(pool) < MinChoices {
		return Deck{}, errors.NewValidationError("brand", brand.Key,
			"needs at least "+strconv.Itoa(MinChoices)+" models with images, has "+strconv.Itoa(len(pool)))
	}
	return Deck{
		Kind:      KindModel,
		Subject:   brand.Key,
		Mode:      mode,
		Seed:      seed,
		Questions: build(pool, mode, seed),
	}, nil
}

func build(pool []item, mode Mode, seed int64) []Question {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	order := rng.Perm(len(pool))

	questions := make([]Question, 0, len(pool))
	for _, i := range order {
		current := pool[i]
		q := Question{ID: current.id, Answer: current.name, Image: current.image}
		if mode == ModeMultiple {
			q.Options = options(rng, pool, current)
		}
		questions = append(questions, q)
	}
	return questions
}

// options returns the answer plus up to MinChoices-1 distractors with
// distinct names, in random order.
func options(rng *rand.Rand, pool []item, current item) []string {
	seen := map[string]bool{fold(current.name): true}
	var distractors []string
	for _, i := range rng.Perm(len(pool)) {
		if len(distractors) == MinChoices-1 {
			break
		}
		other := pool[i]
		key := fold(other.name)
		if other.id == current.id || seen[key] {
			continue
		}
		seen[key] = true
		distractors = append(distractors, other.name)
	}
	opts := append(distractors, current.name)
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
