package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		kind    domain.CommandKind
		matched []domain.CommandKind
	}{
		{name: "scene", prompt: "Draw Scene", kind: domain.KindScene, matched: []domain.CommandKind{domain.KindScene}},
		{name: "full scene", prompt: "please draw full scene now", kind: domain.KindScene, matched: []domain.CommandKind{domain.KindScene}},
		{name: "scene words out of order", prompt: "scene draw", kind: domain.KindUnknown},
		{name: "house", prompt: "  a HOUSE ", kind: domain.KindHouse, matched: []domain.CommandKind{domain.KindHouse}},
		{name: "tree with punctuation", prompt: "tree!", kind: domain.KindTree, matched: []domain.CommandKind{domain.KindTree}},
		{name: "car", prompt: "red car", kind: domain.KindCar, matched: []domain.CommandKind{domain.KindCar}},
		{name: "woman", prompt: "a woman", kind: domain.KindPerson, matched: []domain.CommandKind{domain.KindPerson}},
		{name: "man", prompt: "man", kind: domain.KindPerson, matched: []domain.CommandKind{domain.KindPerson}},
		{name: "sun", prompt: "sun", kind: domain.KindSun, matched: []domain.CommandKind{domain.KindSun}},
		{name: "grasses", prompt: "grasses", kind: domain.KindGrass, matched: []domain.CommandKind{domain.KindGrass}},
		{name: "reset", prompt: "reset", kind: domain.KindClear, matched: []domain.CommandKind{domain.KindClear}},
		{name: "house wins over tree", prompt: "tree next to a house", kind: domain.KindHouse,
			matched: []domain.CommandKind{domain.KindHouse, domain.KindTree}},
		{name: "scene wins over everything", prompt: "clear then draw scene with a car", kind: domain.KindScene,
			matched: []domain.CommandKind{domain.KindScene, domain.KindCar, domain.KindClear}},
		{name: "no substring match", prompt: "sunday scarf", kind: domain.KindUnknown},
		{name: "manual is not man", prompt: "manual", kind: domain.KindUnknown},
		{name: "unknown", prompt: "dance", kind: domain.KindUnknown},
		{name: "empty", prompt: "   ", kind: domain.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.prompt)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Equal(t, tt.matched, cmd.Matched)
			assert.Equal(t, tt.prompt, cmd.Prompt)
		})
	}
}

func TestParseAmbiguous(t *testing.T) {
	assert.True(t, Parse("house and tree").Ambiguous())
	assert.False(t, Parse("house").Ambiguous())
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"draw", "full", "scene"}, Tokenize("draw-full_scene!!"))
	assert.Empty(t, Tokenize("123 ..."))
}

func TestKeywordsFollowPrecedence(t *testing.T) {
	keywords := Keywords()
	if assert.Len(t, keywords, len(domain.Precedence)) {
		for i, k := range keywords {
			assert.Equal(t, domain.Precedence[i], k.Kind)
			assert.NotEmpty(t, k.Description)
		}
	}
	assert.Equal(t, "draw scene, draw full scene", keywords[0].Usage())
}
