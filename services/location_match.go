package services

import (
	"sort"
	"strings"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// minLocationSimilarity is the lowest similarity a suggestion may have
const minLocationSimilarity = 0.5

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// prepareLocations maps normalized locations to their first spelling
func prepareLocations(accommodations []models.Accommodation) (map[string]string, []string) {
	byNormalized := make(map[string]string)
	for _, acc := range accommodations {
		if acc.Location == "" {
			continue
		}
		key := normalizeInput(acc.Location)
		if _, ok := byNormalized[key]; !ok {
			byNormalized[key] = acc.Location
		}
	}

	list := make([]string, 0, len(byNormalized))
	for key := range byNormalized {
		list = append(list, key)
	}
	sort.Strings(list)
	return byNormalized, list
}

// SuggestLocation returns the known location closest to query, or "" when
// nothing is similar enough or query already names a known location.
func SuggestLocation(query string, accommodations []models.Accommodation) string {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return ""
	}

	byNormalized, list := prepareLocations(accommodations)
	if len(list) == 0 {
		return ""
	}

	best := createMatcher(list).Closest(normalizedQuery)
	if best == "" || calculateSimilarity(normalizedQuery, best) < minLocationSimilarity {
		return ""
	}

	suggestion := byNormalized[best]
	if strings.EqualFold(suggestion, strings.TrimSpace(query)) {
		return ""
	}
	return suggestion
}
