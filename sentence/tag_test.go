package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTag(t *testing.T) {
	tests := []struct {
		name       string
		tag        string
		wantPrefix string
		wantType   string
		wantOk     bool
	}{
		{"outside", "O", "", "", true},
		{"begin", "B-PERSON", "B-", "PERSON", true},
		{"inside with family", "I-LOC_CITY", "I-", "LOC_CITY", true},
		{"end marker", "E-DATE", "E-", "DATE", true},
		{"single marker", "S-ORG", "S-", "ORG", true},
		{"lowercase outside", "o", "", "", false},
		{"lowercase prefix", "b-PERSON", "", "", false},
		{"prefix only", "B-", "", "", false},
		{"no prefix", "PERSON", "", "", false},
		{"empty", "", "", "", false},
		{"underscore marker", "B_PERSON", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, typ, ok := SplitTag(tt.tag, BoundaryPrefixes)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

func TestSplitTagCustomPrefixes(t *testing.T) {
	_, typ, ok := SplitTag("E-DATE", []string{"B-", "I-"})
	assert.False(t, ok)
	assert.Empty(t, typ)

	prefix, typ, ok := SplitTag("U-DATE", []string{"B-", "I-", "U-"})
	assert.True(t, ok)
	assert.Equal(t, "U-", prefix)
	assert.Equal(t, "DATE", typ)
}

func TestSentenceHasEntity(t *testing.T) {
	s := Sentence{Tokens: []Token{NewToken("okula", "O"), NewToken("gitti", "O")}}
	assert.False(t, s.HasEntity())

	s.Tokens = append(s.Tokens, NewToken("Ali", "B-PERSON"))
	assert.True(t, s.HasEntity())
}

func TestNewTokenType(t *testing.T) {
	assert.Equal(t, "PERSON", NewToken("Ali", "B-PERSON").Type)
	assert.Empty(t, NewToken("okula", "O").Type)
	assert.Empty(t, NewToken("x", "GARBAGE").Type)
}

func TestDocNumTokens(t *testing.T) {
	d := Doc{Sentences: []Sentence{
		{Tokens: []Token{NewToken("a", "O"), NewToken("b", "O")}},
		{Tokens: []Token{NewToken("c", "O")}},
	}}
	assert.Equal(t, 3, d.NumTokens())
}
