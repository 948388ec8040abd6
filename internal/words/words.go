// Package words loads per-language word lists and serves them to the spawn
// scheduler grouped by length. Lists are immutable for the lifetime of a
// Source; built-in languages are embedded, and a directory on disk can
// provide overrides or additional languages.
package words

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

//go:embed data/*.txt
var builtin embed.FS

// MinLength and MaxLength bound the word lengths the spawn scheduler asks
// for. Load fails when any length in this range has no words, because the
// scheduler could then stall on that length.
const (
	MinLength = 5
	MaxLength = 10
)

// Source is an immutable per-language word list grouped by rune length.
type Source struct {
	language string
	byLength map[int][]string
}

// Language returns the language this source was loaded for.
func (s *Source) Language() string {
	return s.language
}

// WordsOfLength returns the words with the given rune count. The returned
// slice is shared and must not be mutated.
func (s *Source) WordsOfLength(n int) []string {
	return s.byLength[n]
}

// Languages returns the built-in language names in sorted order.
func Languages() []string {
	entries, err := fs.ReadDir(builtin, "data")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Load builds a Source for the given language. A file named
// <language>.txt in overrideDir takes precedence over the embedded list.
// Missing or incomplete lists are configuration errors: fatal to starting a
// game, not to the program.
func Load(language, overrideDir string) (*Source, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, language+".txt")
		if f, err := os.Open(path); err == nil {
			defer f.Close()
			return parse(language, f)
		}
	}

	f, err := builtin.Open("data/" + language + ".txt")
	if err != nil {
		return nil, fmt.Errorf("words: no word list for language %q: %w", language, err)
	}
	defer f.Close()

	return parse(language, f)
}

// parse reads one word per line, keeping lowercase alphabetic words only,
// and groups them by rune length.
func parse(language string, r io.Reader) (*Source, error) {
	src := &Source{
		language: language,
		byLength: make(map[int][]string),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || !isAlpha(word) {
			continue
		}
		n := len([]rune(word))
		src.byLength[n] = append(src.byLength[n], word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: reading %q list: %w", language, err)
	}

	for n := MinLength; n <= MaxLength; n++ {
		if len(src.byLength[n]) == 0 {
			return nil, fmt.Errorf("words: language %q has no words of length %d", language, n)
		}
	}
	return src, nil
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
