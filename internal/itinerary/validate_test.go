package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/trip/internal/model"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"ok", Draft{Day: model.Friday24, Name: "Airport pickup", Time: "10:00"}, nil},
		{"no time", Draft{Day: model.Sunday26, Name: "Konsert"}, nil},
		{"no day", Draft{Name: "x"}, ErrInvalidDay},
		{"unknown day", Draft{Day: "tuesday-28", Name: "x"}, ErrInvalidDay},
		{"blank name", Draft{Day: model.Friday24, Name: "   "}, ErrBlankName},
		{"empty name", Draft{Day: model.Friday24}, ErrBlankName},
		{"bad time", Draft{Day: model.Friday24, Name: "x", Time: "25:00"}, ErrInvalidTime},
		{"short time", Draft{Day: model.Friday24, Name: "x", Time: "9:00"}, ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	bad := model.DayID("nope")
	good := model.Saturday25

	assert.NoError(t, ValidatePatch(Patch{}))
	assert.NoError(t, ValidatePatch(Patch{Day: &good, Time: strp(""), Name: strp("Gent")}))
	assert.ErrorIs(t, ValidatePatch(Patch{Day: &bad}), ErrInvalidDay)
	assert.ErrorIs(t, ValidatePatch(Patch{Name: strp(" ")}), ErrBlankName)
	assert.ErrorIs(t, ValidatePatch(Patch{Time: strp("7pm")}), ErrInvalidTime)
}
