package sentence

// Doc is one annotated document: a folder of the corpus and the sentences
// parsed from its authoritative annotation file.
type Doc struct {
	Id int `json:"id"`

	// Title is the name of the document folder
	Title string `json:"title"`

	// Path of the annotation file the sentences were read from
	Path string `json:"path"`

	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is a non-empty, ordered sequence of tokens.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc_id"`
	Tokens []Token `json:"tokens"`
}

// HasEntity reports whether at least one token of the sentence is not
// tagged Outside.
func (s Sentence) HasEntity() bool {
	for _, t := range s.Tokens {
		if t.Tag != Outside {
			return true
		}
	}
	return false
}

// Token represents a word of the sentence with its BIO tag.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// The full BIO tag, e.g. O, B-PERSON, I-LOC_CITY
	Tag string `json:"tag"`

	// The entity type of the tag without boundary marker. Empty for O.
	Type string `json:"type,omitempty"`
}

// NewToken builds a Token deriving its entity type with the default
// boundary prefixes. Tags that are not well formed leave Type empty.
func NewToken(text, tag string) Token {
	_, typ, _ := SplitTag(tag, BoundaryPrefixes)
	return Token{Text: text, Tag: tag, Type: typ}
}

// NumTokens returns the number of tokens of all sentences of the doc.
func (d Doc) NumTokens() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	return n
}
