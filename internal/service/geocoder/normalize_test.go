package geocoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  R. Floriano   Peixoto,, Conde ,BA ", "rua floriano peixoto, conde, ba"},
		{"Av.Sete de Setembro, 100", "avenida sete de setembro, 100"},
		{"Trav. das Flores", "travessa das flores"},
		{"tv. b, centro", "travessa b, centro"},
		{"Pc. da Matriz", "praça da matriz"},
		{"Rod. BA-099, km 5", "rodovia ba-099, km 5"},
		{"Rua Sr. dos Passos", "rua sr. dos passos"},
		{",, rua da vila ,,", "rua da vila"},
		{"RUA SÃO JOÃO", "rua são joão"},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCompleteLocality(t *testing.T) {
	loc := models.Locality{City: "Conde", State: "BA"}
	aliases := DefaultAliases()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no locality", "rua da vila", "rua da vila, Conde, BA, Brasil"},
		{"city and state without country", "rua da vila, conde, ba", "rua da vila, conde, ba, Brasil"},
		{"state alias", "rua chile, salvador, bahia", "rua chile, salvador, bahia, Brasil"},
		{"complete", "rua da vila, conde, ba, brasil", "rua da vila, conde, ba, brasil"},
		{"country alias", "rua da vila, conde, brazil", "rua da vila, conde, brazil"},
		{"state token inside a word", "rua barão de cotegipe", "rua barão de cotegipe, Conde, BA, Brasil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompleteLocality(tt.in, loc, "Brasil", aliases))
		})
	}
}

func TestExtractStreet(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"rua floriano peixoto, conde, ba", "rua floriano peixoto", true},
		{"avenida beira mar", "avenida beira mar", true},
		{"praça da matriz, 10", "praça da matriz", true},
		{"conde, ba", "", false},
		{"loja da rua nova", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ExtractStreet(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCEP(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"48300-000", "48300000", true},
		{"48.300-000", "48300000", true},
		{"4830-000", "4830000", false},
		{"483000001", "483000001", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeCEP(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("rua da vila, conde", "conde"))
	assert.True(t, containsWord("conde", "conde"))
	assert.False(t, containsWord("condeuba", "conde"))
	assert.False(t, containsWord("visconde de maua", "conde"))
	assert.True(t, containsWord("sitio do conde, ba", "ba"))
	assert.False(t, containsWord("anything", ""))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "praca da matriz", fold("Praça da Matriz"))
	assert.Equal(t, "sao joao", fold(" SÃO JOÃO "))
	assert.Equal(t, "jandaira", fold("Jandaíra"))
}
