package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPFValid(t *testing.T) {
	cases := []struct {
		name string
		cpf  string
		want bool
	}{
		{"válido sem máscara", "52998224725", true},
		{"válido com máscara", "529.982.247-25", true},
		{"outro válido", "111.444.777-35", true},
		{"dígito verificador zero", "39053344705", true},
		{"todos iguais", "11111111111", false},
		{"zeros", "000.000.000-00", false},
		{"curto", "5299822472", false},
		{"longo", "529982247250", false},
		{"vazio", "", false},
		{"primeiro verificador alterado", "52998224735", false},
		{"segundo verificador alterado", "52998224724", false},
		{"letras", "abc", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCPFValid(tc.cpf))
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeCPF(" 529.982.247-25 "))
	assert.Equal(t, "", NormalizeCPF("---"))
}
