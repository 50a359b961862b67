package match

import (
	"sort"

	"fprime-yamcs-mdb/internal/common"
)

// DefaultMinScore is the similarity a candidate needs to be suggested.
const DefaultMinScore = 0.6

// DefaultMaxSuggestions caps the number of suggestions per diagnostic.
const DefaultMaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates whose similarity to name is at
// least DefaultMinScore, best first. The full name and its last scope are
// both compared and the higher score counts, so "sg.Sample" still finds
// "Ref.sg.Samples". Equal scores are ordered by name.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := max(Similarity(name, c), Similarity(common.ShortName(name), common.ShortName(c)))
		if score >= DefaultMinScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
