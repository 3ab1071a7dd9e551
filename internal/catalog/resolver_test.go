package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(loadShipped(t))

	t.Run("case-insensitive exact match", func(t *testing.T) {
		crop, err := resolver.Resolve("  green BEAN ", domain.SeasonSpring)
		require.NoError(t, err)
		assert.Equal(t, "Green Bean", crop.Name)
	})

	t.Run("typo suggests the closest crop", func(t *testing.T) {
		_, err := resolver.Resolve("parsnp", domain.SeasonSpring)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCropNotFound))

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		require.NotEmpty(t, notFound.Suggestions)
		assert.Equal(t, "Parsnip", notFound.Suggestions[0])
		assert.Contains(t, err.Error(), "did you mean Parsnip")
	})

	t.Run("out of season", func(t *testing.T) {
		_, err := resolver.Resolve("Melon", domain.SeasonSpring)
		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, domain.SeasonSpring, notFound.Season)
		assert.NotContains(t, notFound.Suggestions, "Melon")
	})

	t.Run("no reference data", func(t *testing.T) {
		_, err := NewResolver(nil).Resolve("Parsnip", domain.SeasonSpring)
		assert.ErrorIs(t, err, domain.ErrReferenceNotLoaded)
	})
}

func TestResolver_Suggest(t *testing.T) {
	resolver := NewResolver(loadShipped(t))

	tests := []struct {
		name     string
		query    string
		season   domain.Season
		expected []string
	}{
		{"prefix", "straw", domain.SeasonSpring, []string{"Strawberry"}},
		{"missing letter", "kal", domain.SeasonSpring, []string{"Kale"}},
		{"nothing close", "zzzzzzzz", domain.SeasonSpring, []string{}},
		{"blank", "   ", domain.SeasonSpring, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Suggest(tt.query, tt.season)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLevenshteinLimit(t *testing.T) {
	assert.Equal(t, 1, levenshteinLimit(4))
	assert.Equal(t, 2, levenshteinLimit(8))
	assert.Equal(t, 3, levenshteinLimit(12))
}
