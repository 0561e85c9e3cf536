package sentence

import "strings"

// Outside is the tag of tokens outside any entity.
const Outside = "O"

// BoundaryPrefixes are the recognized span boundary markers (BIOES).
var BoundaryPrefixes = []string{"B-", "I-", "E-", "S-"}

// SplitTag splits a BIO tag into its boundary marker and entity type.
//
// Outside yields ("", "", true). A tag starting with one of prefixes and a
// non-empty remainder yields the prefix and the remainder. Everything else
// is malformed and yields ok false. Comparison is case sensitive.
func SplitTag(tag string, prefixes []string) (prefix, typ string, ok bool) {
	if tag == Outside {
		return "", "", true
	}

	for _, p := range prefixes {
		if p == "" || !strings.HasPrefix(tag, p) {
			continue
		}

		typ = tag[len(p):]
		if typ == "" {
			return "", "", false
		}
		return p, typ, true
	}

	return "", "", false
}
