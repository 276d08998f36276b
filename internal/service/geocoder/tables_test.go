package geocoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

func TestMatch_WholeWordsOnly(t *testing.T) {
	places := []Place{
		{Name: "vila", Point: models.GeoPoint{Latitude: 1, Longitude: 1}},
		{Name: "Praça da Matriz", Point: models.GeoPoint{Latitude: 2, Longitude: 2}},
		{Name: "conde", Point: models.GeoPoint{Latitude: 3, Longitude: 3}},
	}

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"whole word", "rua da vila, 12", "vila", true},
		{"prefix of a longer word", "rua vilanova", "", false},
		{"suffix of a longer word", "travessa do visconde", "", false},
		{"accents folded on both sides", "praca da matriz, centro", "Praça da Matriz", true},
		{"first table entry wins", "vila do conde", "vila", true},
		{"digits are word characters", "lote conde2", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := match(places, fold(tt.text))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestLookup_ExactFoldedName(t *testing.T) {
	places := []Place{{Name: "Jandaíra"}, {Name: "Conde"}}

	got, ok := lookup(places, "JANDAIRA")
	assert.True(t, ok)
	assert.Equal(t, "Jandaíra", got.Name)

	_, ok = lookup(places, "conde de cima")
	assert.False(t, ok)
}
