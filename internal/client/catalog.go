package client

import (
	"sort"
	"strings"

	"movietime/internal/dto/response"
)

// Catalog helpers are pure: they take the full result set and return a new
// slice, so they can be re-run on every keystroke or selection change.

// FilterByTitle keeps movies whose title contains the query,
// case-insensitively. An empty query keeps everything.
func FilterByTitle(movies []response.MovieResponse, query string) []response.MovieResponse {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		if query == "" || strings.Contains(strings.ToLower(movie.Title), query) {
			filtered = append(filtered, movie)
		}
	}
	return filtered
}

// SortByPrice returns the movies ordered by price. The input is untouched.
func SortByPrice(movies []response.MovieResponse, ascending bool) []response.MovieResponse {
	sorted := make([]response.MovieResponse, len(movies))
	copy(sorted, movies)

	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Price < sorted[j].Price
		}
		return sorted[i].Price > sorted[j].Price
	})

	return sorted
}
