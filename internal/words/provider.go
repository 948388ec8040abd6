package words

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// Provider serves Sources on demand and caches them per language. An
// optional override directory contributes extra languages and shadows the
// embedded lists, matching Load's precedence.
type Provider struct {
	overrideDir string

	mu    sync.Mutex
	cache map[string]*Source
}

// NewProvider creates a provider. overrideDir may be empty.
func NewProvider(overrideDir string) *Provider {
	return &Provider{
		overrideDir: overrideDir,
		cache:       make(map[string]*Source),
	}
}

// Languages returns the available language names in sorted order: the
// built-in lists plus any .txt files in the override directory.
func (p *Provider) Languages() []string {
	seen := make(map[string]bool)
	for _, name := range Languages() {
		seen[name] = true
	}
	if p.overrideDir != "" {
		if entries, err := os.ReadDir(p.overrideDir); err == nil {
			for _, e := range entries {
				if name, ok := strings.CutSuffix(e.Name(), ".txt"); ok && !e.IsDir() {
					seen[name] = true
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the word list for a language, loading it on first use.
func (p *Provider) Source(language string) (*Source, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if src, ok := p.cache[language]; ok {
		return src, nil
	}
	src, err := Load(language, p.overrideDir)
	if err != nil {
		return nil, err
	}
	p.cache[language] = src
	return src, nil
}
