package stat

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// Counts maps a label or entity type to its number of occurrences.
type Counts map[string]int

// Count is one entry of a sorted Counts.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Sorted returns the entries by descending count, ties broken
// alphabetically.
func (c Counts) Sorted() []Count {
	out := make([]Count, 0, len(c))
	for k, v := range c {
		out = append(out, Count{Key: k, Count: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})

	return out
}

// Top returns at most n entries of Sorted. n <= 0 returns all.
func (c Counts) Top(n int) []Count {
	sorted := c.Sorted()
	if n > 0 && n < len(sorted) {
		return sorted[:n]
	}
	return sorted
}

// MarshalJSON writes c as a JSON object with the keys in Sorted order.
func (c Counts) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range c.Sorted() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(kv.Count))
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
