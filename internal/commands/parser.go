package commands

import (
	"strings"
	"unicode"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// Normalize lower-cases and trims a prompt
func Normalize(prompt string) string {
	return strings.ToLower(strings.TrimSpace(prompt))
}

// Tokenize splits a normalized prompt into words, treating anything that is
// not a letter as a separator
func Tokenize(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// Parse classifies a prompt. Every keyword group is checked; Matched lists
// all groups found in precedence order and Kind is the first of them.
func Parse(prompt string) domain.Command {
	normalized := Normalize(prompt)
	tokens := Tokenize(normalized)

	cmd := domain.Command{
		Prompt:     prompt,
		Normalized: normalized,
		Kind:       domain.KindUnknown,
	}

	for _, k := range Keywords() {
		if matchesAny(tokens, k.Phrases) {
			cmd.Matched = append(cmd.Matched, k.Kind)
		}
	}
	if len(cmd.Matched) > 0 {
		cmd.Kind = cmd.Matched[0]
	}
	return cmd
}

func matchesAny(tokens []string, phrases [][]string) bool {
	for _, p := range phrases {
		if containsSequence(tokens, p) {
			return true
		}
	}
	return false
}

func containsSequence(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, word := range phrase {
			if tokens[i+j] != word {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
