package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("   ")
	assert.Equal(t, "", result.Command)
	assert.Nil(t, result.Args)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("me")
	assert.Equal(t, "me", result.Command)
	assert.Nil(t, result.Args)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("YOU")
	assert.Equal(t, "you", result.Command)
}

func TestParse_WithArgs(t *testing.T) {
	result := Parse("  use   Saw  ")
	assert.Equal(t, "use", result.Command)
	assert.Equal(t, []string{"Saw"}, result.Args)
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		for _, c := range result.Command {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("command %q contains uppercase char in Parse result %q", word, result.Command)
			}
		}
	})
}
