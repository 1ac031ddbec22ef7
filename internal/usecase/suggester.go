package usecase

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/pantrylist/backend/internal/domain"
)

const (
	phoneticSuggestionThreshold = 0.70
	fuzzySuggestionThreshold    = 0.80
)

// Suggest ranks candidates that sound or look like the query. It is advisory
// only and is used to enrich a "nothing found" response after the resolver
// returned NoMatch.
//
// A candidate qualifies when it shares a Double Metaphone code with the query
// and its Jaro-Winkler score is at least 0.70, or when its score alone is at
// least 0.80. Results are ordered by score, ties keep candidate order.
func Suggest(query string, candidates []domain.CatalogEntry, limit int) []domain.CatalogEntry {
	if limit <= 0 {
		return nil
	}

	normalizedQuery := NormalizeString(query)
	if normalizedQuery == "" {
		return nil
	}
	queryTokens := strings.Fields(normalizedQuery)
	queryCodes := metaphoneCodes(queryTokens)

	type scored struct {
		entry domain.CatalogEntry
		score float64
	}

	var ranked []scored
	for _, candidate := range DedupeEntries(candidates) {
		normalizedName := NormalizeString(candidate.DisplayName)
		if normalizedName == "" {
			continue
		}
		nameTokens := strings.Fields(normalizedName)

		score := bestJaroWinkler(queryTokens, nameTokens, normalizedQuery, normalizedName)
		phonetic := codesOverlap(queryCodes, metaphoneCodes(nameTokens))

		if (phonetic && score >= phoneticSuggestionThreshold) || score >= fuzzySuggestionThreshold {
			ranked = append(ranked, scored{entry: candidate, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	suggestions := make([]domain.CatalogEntry, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, r.entry)
	}
	return suggestions
}

// metaphoneCodes returns the union of Double Metaphone codes for the tokens.
// Tokens without Latin consonants produce no codes.
func metaphoneCodes(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		primary, secondary := matchr.DoubleMetaphone(t)
		if primary != "" {
			codes[primary] = struct{}{}
		}
		if secondary != "" {
			codes[secondary] = struct{}{}
		}
	}
	return codes
}

func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestJaroWinkler compares full strings, space-stripped strings and every
// token pair, returning the highest score
func bestJaroWinkler(queryTokens, nameTokens []string, queryFull, nameFull string) float64 {
	score := matchr.JaroWinkler(queryFull, nameFull, false)

	if len(queryTokens) > 1 || len(nameTokens) > 1 {
		if s := matchr.JaroWinkler(strings.Join(queryTokens, ""), strings.Join(nameTokens, ""), false); s > score {
			score = s
		}
	}

	for _, qt := range queryTokens {
		for _, nt := range nameTokens {
			if s := matchr.JaroWinkler(qt, nt, false); s > score {
				score = s
			}
		}
	}

	return score
}
