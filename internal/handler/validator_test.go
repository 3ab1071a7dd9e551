package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seasonChannelStruct struct {
	Season  string `json:"season" validate:"season"`
	Channel string `json:"channel" validate:"channel"`
	Seeds   int    `json:"seeds" validate:"gte=0,lte=100000"`
}

func TestValidator_SeasonAndChannel(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   seasonChannelStruct
		wantErr bool
	}{
		// Best case
		{"spring sold", seasonChannelStruct{Season: "spring", Channel: "sold"}, false},
		{"winter aged", seasonChannelStruct{Season: "winter", Channel: "aged"}, false},

		// Boundary - empty allowed (not required)
		{"empty values", seasonChannelStruct{}, false},
		{"max seeds", seasonChannelStruct{Seeds: 100000}, false},

		// Edge - case insensitive
		{"title case", seasonChannelStruct{Season: "Fall", Channel: "Kegged"}, false},

		// Invalid
		{"unknown season", seasonChannelStruct{Season: "monsoon"}, true},
		{"unknown channel", seasonChannelStruct{Channel: "smoked"}, true},
		{"too many seeds", seasonChannelStruct{Seeds: 100001}, true},
		{"negative seeds", seasonChannelStruct{Seeds: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("fields are reported by json path", func(t *testing.T) {
		req := EstimateRequest{
			SkillLevel: 101,
			Season:     "monsoon",
			Rows:       []EstimateRowRequest{{CropName: "Parsnip", SeedCount: 100001}},
		}
		fields := FormatValidationError(v.ValidateStruct(req))

		require.Len(t, fields, 3)
		assert.Equal(t, "Must be at most 100", fields["skill_level"])
		assert.Equal(t, ErrMsgInvalidSeasonError, fields["season"])
		assert.Equal(t, "Must be at most 100000", fields["rows[0].seed_count"])
	})

	t.Run("required rows", func(t *testing.T) {
		fields := FormatValidationError(v.ValidateStruct(EstimateRequest{Season: "spring"}))
		assert.Equal(t, "This field is required", fields["rows"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "rows[0].seed_count", fieldPath("EstimateRequest.rows[0].seed_count"))
	assert.Equal(t, "season", fieldPath("season"))
}
