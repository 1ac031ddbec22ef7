package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/pantrylist/backend/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Resolver scores
const (
	ExactMatchScore       = 1.0
	ContainmentMatchScore = 0.92
	AcceptanceThreshold   = 0.60
)

// combiningDiacritics is the Combining Diacritical Marks block (U+0300..U+036F)
var combiningDiacritics = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// NormalizeString canonicalizes a string for comparison: canonical
// decomposition, combining diacritics removed, lower-cased, trimmed.
// Lower-casing follows Unicode context rules, so a word-final capital sigma
// becomes ς. Greek and Latin are not transliterated into each other.
func NormalizeString(s string) string {
	if s == "" {
		return ""
	}

	// Transformers and casers carry state, so both are built per call
	t := transform.Chain(norm.NFD, runes.Remove(combiningDiacritics))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s // keep the input as is
	}

	return strings.TrimSpace(cases.Lower(language.Und).String(stripped))
}

// SimilarityScore returns 1 - levenshtein(a, b) / max(len(a), len(b)) in [0, 1].
// Lengths are counted in runes. Either string empty yields 0.
func SimilarityScore(a, b string) float64 {
	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA == 0 || lenB == 0 {
		return 0
	}
	if a == b {
		return 1
	}

	distance := levenshteinDistance(a, b)
	return 1 - float64(distance)/float64(max(lenA, lenB))
}

// levenshteinDistance calculates the edit distance between two strings
// using the full (len(b)+1) x (len(a)+1) matrix
func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(ra); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = min(
				matrix[i-1][j],   // deletion
				matrix[i][j-1],   // insertion
				matrix[i-1][j-1], // substitution
			) + 1
		}
	}

	return matrix[len(rb)][len(ra)]
}

// scoreCandidate applies the exact / containment / fuzzy tiers to two
// normalized strings
func scoreCandidate(normalizedName, normalizedQuery string) float64 {
	switch {
	case normalizedName == normalizedQuery:
		return ExactMatchScore
	case strings.Contains(normalizedName, normalizedQuery),
		strings.Contains(normalizedQuery, normalizedName):
		return ContainmentMatchScore
	default:
		return SimilarityScore(normalizedName, normalizedQuery)
	}
}

// ResolveVoiceCommand picks the candidate a spoken phrase most likely refers to.
// The first candidate to reach the best score wins ties. Candidates are never
// modified. Returns domain.NoMatch for an empty query or when the best score
// is below AcceptanceThreshold.
func ResolveVoiceCommand(query string, candidates []domain.CatalogEntry) domain.MatchResult {
	normalizedQuery := NormalizeString(query)
	if normalizedQuery == "" {
		return domain.NoMatch
	}

	var best domain.CatalogEntry
	bestScore := 0.0

	for _, candidate := range candidates {
		normalizedName := NormalizeString(candidate.DisplayName)
		if normalizedName == "" {
			continue
		}

		score := scoreCandidate(normalizedName, normalizedQuery)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore < AcceptanceThreshold {
		return domain.NoMatch
	}

	return domain.Matched(best, bestScore)
}

// DedupeProducts keeps the first occurrence of each product id, preserving order
func DedupeProducts(products []domain.Product) []domain.Product {
	return dedupeBy(products, func(p domain.Product) string { return p.ID })
}

// DedupeEntries keeps the first occurrence of each entry id, preserving order
func DedupeEntries(entries []domain.CatalogEntry) []domain.CatalogEntry {
	return dedupeBy(entries, func(e domain.CatalogEntry) string { return e.ID })
}

func dedupeBy[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, item)
	}
	return result
}

// CatalogEntries projects products onto resolver candidates
func CatalogEntries(products []domain.Product) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, p.CatalogEntry())
	}
	return entries
}
