package commands

import (
	"strings"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// Keyword is the vocabulary that selects one drawing action. A phrase is a
// sequence of whole words that must appear consecutively in the prompt.
type Keyword struct {
	Kind        domain.CommandKind
	Phrases     [][]string
	Description string
}

// Usage returns the phrases joined for display
func (k Keyword) Usage() string {
	parts := make([]string, len(k.Phrases))
	for i, p := range k.Phrases {
		parts[i] = strings.Join(p, " ")
	}
	return strings.Join(parts, ", ")
}

var vocabulary = []Keyword{
	{
		Kind:        domain.KindScene,
		Phrases:     [][]string{{"draw", "scene"}, {"draw", "full", "scene"}},
		Description: "House with a tree to its right, a person in front and the sun above",
	},
	{
		Kind:        domain.KindHouse,
		Phrases:     [][]string{{"house"}, {"houses"}},
		Description: "House at the default position; later elements are placed around it",
	},
	{
		Kind:        domain.KindTree,
		Phrases:     [][]string{{"tree"}, {"trees"}},
		Description: "Tree to the right of the last house",
	},
	{
		Kind:        domain.KindCar,
		Phrases:     [][]string{{"car"}, {"cars"}},
		Description: "Car front-left of the last house",
	},
	{
		Kind:        domain.KindPerson,
		Phrases:     [][]string{{"person"}, {"people"}, {"man"}, {"men"}, {"woman"}, {"women"}},
		Description: "Stick figure in front of the last house",
	},
	{
		Kind:        domain.KindSun,
		Phrases:     [][]string{{"sun"}},
		Description: "Sun above and to the right of the last house",
	},
	{
		Kind:        domain.KindGrass,
		Phrases:     [][]string{{"grass"}, {"grasses"}},
		Description: "Strip of grass along the ground line",
	},
	{
		Kind:        domain.KindClear,
		Phrases:     [][]string{{"clear"}, {"reset"}},
		Description: "Select all, delete, and forget the last house",
	},
}

// Keywords returns the vocabulary in precedence order
func Keywords() []Keyword {
	out := make([]Keyword, 0, len(vocabulary))
	for _, kind := range domain.Precedence {
		for _, k := range vocabulary {
			if k.Kind == kind {
				out = append(out, k)
			}
		}
	}
	return out
}

// HelpMessage is the status returned for prompts that match no keyword
const HelpMessage = "Unknown command. Use keywords: house / tree / car / person / sun / grass / draw scene / clear."
