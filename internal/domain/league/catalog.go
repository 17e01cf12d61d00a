package league

import (
	"fmt"

	"github.com/riskibarqy/matchday-predictor/internal/platform/textmatch"
)

// Catalog is the fixed, ordered set of supported leagues. Registration order
// decides which entry wins when aliases of several leagues overlap.
type Catalog struct {
	entries []League
	byKey   map[string]int
	aliases [][]string
}

func NewCatalog(entries []League) (*Catalog, error) {
	c := &Catalog{
		entries: make([]League, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
		aliases: make([][]string, 0, len(entries)),
	}

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if _, exists := c.byKey[entry.Key]; exists {
			return nil, fmt.Errorf("duplicate league key %q", entry.Key)
		}

		normalized := make([]string, 0, len(entry.Aliases))
		for _, alias := range entry.Aliases {
			normalized = append(normalized, textmatch.Normalize(alias))
		}

		entry = entry.clone()
		c.byKey[entry.Key] = len(c.entries)
		c.entries = append(c.entries, entry)
		c.aliases = append(c.aliases, normalized)
	}

	return c, nil
}

// Resolve returns the first league having an alias that contains, or is
// contained in, the normalized text.
func (c *Catalog) Resolve(text string) (League, bool) {
	query := textmatch.Normalize(text)
	if query == "" {
		return League{}, false
	}

	for i, aliases := range c.aliases {
		for _, alias := range aliases {
			if alias == "" {
				continue
			}
			if textmatch.Contains(alias, query) {
				return c.entries[i].clone(), true
			}
		}
	}

	return League{}, false
}

func (c *Catalog) Get(key string) (League, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return League{}, false
	}
	return c.entries[idx].clone(), true
}

func (c *Catalog) List() []League {
	out := make([]League, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry.clone())
	}
	return out
}

func (c *Catalog) DisplayNames() []string {
	out := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry.DisplayName)
	}
	return out
}
