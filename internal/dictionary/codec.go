package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// storedEntry is the on-disk shape of an entry. Example only exists in legacy documents.
type storedEntry struct {
	Meaning  string   `json:"meaning"`
	Example  *string  `json:"example,omitempty"`
	Examples []string `json:"examples"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// isLegacy reports whether the entry still carries the single "example" string,
// with or without an "examples" list next to it.
func (s storedEntry) isLegacy() bool {
	return s.Example != nil
}

func (s storedEntry) toEntry() Entry {
	entry := Entry{
		Meaning:  s.Meaning,
		Examples: s.Examples,
		Synonyms: s.Synonyms,
		Antonyms: s.Antonyms,
		Category: s.Category,
		Tags:     s.Tags,
	}
	if s.isLegacy() {
		if example := strings.TrimSpace(*s.Example); example != "" && !slices.Contains(s.Examples, example) {
			entry.Examples = append([]string{example}, s.Examples...)
		}
	}
	return entry.Clone()
}

// MarshalJSON writes the dictionary as a JSON object keyed by word, in insertion order.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, word := range d.words {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalLiteral(word)
		if err != nil {
			return nil, fmt.Errorf("marshalLiteral(%q) > %w", word, err)
		}
		value, err := marshalLiteral(d.entries[word].Clone())
		if err != nil {
			return nil, fmt.Errorf("marshalLiteral(entry %q) > %w", word, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a canonical document. Legacy entries are rejected with ErrLegacyFormat.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	decoded, _, err := decodeDocument(data, false)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// marshalLiteral encodes v without HTML escaping so stored text stays as typed.
func marshalLiteral(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeDocument returns the indented document written by Save.
func encodeDocument(d *Dictionary) ([]byte, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "    "); err != nil {
		return nil, fmt.Errorf("json.Indent > %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// decodeDocument parses a document keeping key order. With allowLegacy, single-example
// entries are converted and counted instead of rejected.
func decodeDocument(data []byte, allowLegacy bool) (*Dictionary, int, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return nil, 0, fmt.Errorf("decoder.Token() > %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, 0, fmt.Errorf("expected a JSON object at the top level, got %v", token)
	}

	dict := NewDictionary()
	converted := 0
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, 0, fmt.Errorf("decoder.Token() > %w", err)
		}
		key, ok := token.(string)
		if !ok {
			return nil, 0, fmt.Errorf("expected a word key, got %v", token)
		}
		// Keys are compared with console input, which is NFC.
		word := NormalizeText(key)

		var stored storedEntry
		if err := decoder.Decode(&stored); err != nil {
			return nil, 0, fmt.Errorf("entry %q > %w", word, err)
		}
		if stored.isLegacy() {
			if !allowLegacy {
				return nil, 0, fmt.Errorf("entry %q: %w", word, ErrLegacyFormat)
			}
			converted++
		}

		entry := stored.toEntry()
		if dict.Has(word) {
			dict.entries[word] = entry
			continue
		}
		dict.entries[word] = entry
		dict.words = append(dict.words, word)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, 0, fmt.Errorf("decoder.Token() > %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, 0, errors.New("unexpected data after the dictionary object")
	}
	return dict, converted, nil
}

// MigrateLegacyDocument converts a document that may contain single-example entries
// into a Dictionary, returning how many entries were converted.
func MigrateLegacyDocument(data []byte) (*Dictionary, int, error) {
	return decodeDocument(data, true)
}
