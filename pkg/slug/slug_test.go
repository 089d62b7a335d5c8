package slug_test

import (
	"testing"

	"github.com/hava-distribution/catalog/pkg/slug"
	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"Lowercases", "Cylindres", "cylindres"},
		{"SpacesToHyphens", "Serrures multipoints", "serrures-multipoints"},
		{"WhitespaceRunsCollapse", "Serrures  3   points", "serrures-3-points"},
		{"InvalidCharsStripped", "Serrures (antipanique)", "serrures-antipanique"},
		{"AccentsStripped", "Gâches électriques", "gches-lectriques"},
		{"HyphenRunsCollapse", "Butée / tampon", "bute-tampon"},
		{"TrimsEdgeHyphens", " - Profilé - ", "profil"},
		{"Empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.label))
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"SingleWord", "hello", "Hello"},
		{"TwoWords", "hello-world", "Hello World"},
		{"ThreeWords", "hello-world-test", "Hello World Test"},
		{"AccentedFirstLetter", "égouttoir escamotable", "Égouttoir escamotable"},
		{"Empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Title(tc.in))
		})
	}
}
