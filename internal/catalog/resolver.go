package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// NotFoundError is returned when a crop name does not resolve in a season.
// It unwraps to domain.ErrCropNotFound.
type NotFoundError struct {
	Name        string
	Season      domain.Season
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s: '%s' in %s", domain.ErrMsgCropNotFound, e.Name, e.Season)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NotFoundError) Unwrap() error {
	return domain.ErrCropNotFound
}

// Resolver turns user-typed crop names into catalog entries
type Resolver struct {
	data *ReferenceData
}

// NewResolver creates a Resolver over loaded reference data
func NewResolver(data *ReferenceData) *Resolver {
	return &Resolver{data: data}
}

// Resolve finds a crop in season, or returns a *NotFoundError with close matches
func (r *Resolver) Resolve(name string, season domain.Season) (*domain.CropDefinition, error) {
	if r.data == nil {
		return nil, domain.ErrReferenceNotLoaded
	}
	if crop, ok := r.data.Find(name, season); ok {
		return crop, nil
	}
	return nil, &NotFoundError{
		Name:        name,
		Season:      season,
		Suggestions: r.Suggest(name, season),
	}
}

type suggestion struct {
	name string
	dist int
	pos  int
}

// Suggest lists in-season crop names close to name, nearest first
func (r *Resolver) Suggest(name string, season domain.Season) []string {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" || r.data == nil {
		return nil
	}

	var found []suggestion
	for i, crop := range r.data.bySeason[season] {
		candidate := strings.ToLower(crop.Name)
		dist := levenshtein.ComputeDistance(query, candidate)
		if dist <= levenshteinLimit(len(candidate)) || strings.HasPrefix(candidate, query) {
			found = append(found, suggestion{name: crop.Name, dist: dist, pos: i})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].pos < found[j].pos
	})

	if len(found) > maxSuggestions {
		found = found[:maxSuggestions]
	}
	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= shortNameLen:
		return 1
	case length <= mediumNameLen:
		return 2
	default:
		return 3
	}
}
