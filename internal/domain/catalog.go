package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyCatalog is returned when a catalog is constructed with no entries.
var ErrEmptyCatalog = errors.New("catalog has no entries")

// DefaultMaxDistance is the edit-distance cap for fuzzy label matching.
// Raw labels further than this from every catalog entry do not match.
const DefaultMaxDistance = 8

// foldChain strips combining marks so accented input folds to plain ASCII,
// e.g. "Tornádo" -> "Tornado".
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold canonicalizes a label for matching: trims whitespace, lowercases,
// and strips accents.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		return s
	}
	return folded
}

// Catalog is the fixed, ordered set of canonical event type labels. Entries
// are folded once at construction; the catalog is read-only afterwards and
// safe for concurrent use. Entry order matters: it breaks ties both in fuzzy
// matching and in ranked report output.
type Catalog struct {
	entries     []string
	index       map[string]int
	maxDistance int
}

// NewCatalog builds a catalog from ordered canonical labels. A maxDistance
// of zero or less selects [DefaultMaxDistance].
func NewCatalog(labels []string, maxDistance int) (*Catalog, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyCatalog
	}
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	c := &Catalog{
		entries:     make([]string, 0, len(labels)),
		index:       make(map[string]int, len(labels)),
		maxDistance: maxDistance,
	}
	for _, label := range labels {
		folded := Fold(label)
		if folded == "" {
			return nil, fmt.Errorf("catalog entry %q folds to an empty label", label)
		}
		if _, dup := c.index[folded]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", folded)
		}
		c.index[folded] = len(c.entries)
		c.entries = append(c.entries, folded)
	}
	return c, nil
}

// DefaultCatalog returns the 48 NWS Directive 10-1605 storm event types with
// the default distance cap.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultEventTypes(), DefaultMaxDistance)
	if err != nil {
		// The shipped list is static and valid; reaching this is a bug.
		panic(err)
	}
	return c
}

// Match fuzzy-matches a raw free-text label against the catalog. It returns
// the canonical (folded) label, or false when the closest entry is further
// than the distance cap away.
//
// Tie policy: when several entries share the minimum distance the lowest
// catalog index wins. The sequential scan keeps the first minimum it sees,
// which makes the choice deterministic.
func (c *Catalog) Match(raw string) (string, bool) {
	folded := Fold(raw)
	if folded == "" {
		return "", false
	}
	if _, ok := c.index[folded]; ok {
		return folded, true
	}

	best := ""
	bestDist := c.maxDistance + 1
	for _, entry := range c.entries {
		if d := levenshtein.Distance(folded, entry, nil); d < bestDist {
			best = entry
			bestDist = d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// Index returns the position of a canonical label in catalog order.
func (c *Catalog) Index(label string) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the folded catalog labels in order.
func (c *Catalog) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}

// DefaultEventTypes lists the permitted storm event types from NWS
// Directive 10-1605, in directive order.
func DefaultEventTypes() []string {
	return []string{
		"Astronomical Low Tide",
		"Avalanche",
		"Blizzard",
		"Coastal Flood",
		"Cold/Wind Chill",
		"Debris Flow",
		"Dense Fog",
		"Dense Smoke",
		"Drought",
		"Dust Devil",
		"Dust Storm",
		"Excessive Heat",
		"Extreme Cold/Wind Chill",
		"Flash Flood",
		"Flood",
		"Freezing Fog",
		"Frost/Freeze",
		"Funnel Cloud",
		"Hail",
		"Heat",
		"Heavy Rain",
		"Heavy Snow",
		"High Surf",
		"High Wind",
		"Hurricane (Typhoon)",
		"Ice Storm",
		"Lake-Effect Snow",
		"Lakeshore Flood",
		"Lightning",
		"Marine Hail",
		"Marine High Wind",
		"Marine Strong Wind",
		"Marine Thunderstorm Wind",
		"Rip Current",
		"Seiche",
		"Sleet",
		"Storm Surge/Tide",
		"Strong Wind",
		"Thunderstorm Wind",
		"Tornado",
		"Tropical Depression",
		"Tropical Storm",
		"Tsunami",
		"Volcanic Ash",
		"Waterspout",
		"Wildfire",
		"Winter Storm",
		"Winter Weather",
	}
}
