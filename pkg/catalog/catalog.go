// Package catalog holds the static skill catalog and synonym table the
// analyzer matches against. Both ship embedded in the binary and are parsed
// once at program start; a Catalog is read-only after construction and safe
// for concurrent use.
package catalog

import (
	_ "embed"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"sort"

	"go.yaml.in/yaml/v4"
)

//go:embed skills.yaml
var defaultYAML []byte

// phrase matches the normalized shape every skill and alternate must have.
var phrase = regexp.MustCompile(`^[a-z0-9]+( [a-z0-9]+)*$`)

// std is built at init so a broken embedded file fails fast.
var std = MustParse(defaultYAML) //nolint: gochecknoglobals

// Catalog is an immutable set of canonical skills plus a synonym table that
// maps alternate phrasings onto those skills.
type Catalog struct {
	skills   []string
	index    map[string]struct{}
	synonyms map[string]string
}

type file struct {
	Skills   []string          `yaml:"skills"`
	Synonyms map[string]string `yaml:"synonyms"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog { return std }

// Parse decodes a YAML catalog and checks that every entry is already in
// normalized form and that every synonym points at a known skill.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}

	return New(f.Skills, f.Synonyms)
}

// MustParse is like Parse but panics on error.
func MustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return c
}

// New builds a catalog from skills and a synonym table. Duplicate skills are
// folded; skills are kept in lexical order.
func New(skills []string, synonyms map[string]string) (*Catalog, error) {
	c := &Catalog{
		index:    make(map[string]struct{}, len(skills)),
		synonyms: make(map[string]string, len(synonyms)),
	}
	for _, s := range skills {
		if !phrase.MatchString(s) {
			return nil, fmt.Errorf("skill %q is not normalized", s)
		}
		if _, ok := c.index[s]; ok {
			continue
		}
		c.index[s] = struct{}{}
		c.skills = append(c.skills, s)
	}
	if len(c.skills) == 0 {
		return nil, fmt.Errorf("catalog has no skills")
	}
	sort.Strings(c.skills)

	for alt, canonical := range synonyms {
		if !phrase.MatchString(alt) {
			return nil, fmt.Errorf("synonym %q is not normalized", alt)
		}
		if _, ok := c.index[canonical]; !ok {
			return nil, fmt.Errorf("synonym %q maps to unknown skill %q", alt, canonical)
		}
		if alt == canonical {
			continue
		}
		c.synonyms[alt] = canonical
	}

	return c, nil
}

// Skills returns the canonical skills in lexical order.
func (c *Catalog) Skills() []string { return slices.Clone(c.skills) }

// Synonyms returns a copy of the alternate -> canonical table.
func (c *Catalog) Synonyms() map[string]string { return maps.Clone(c.synonyms) }

// Has reports whether skill is a canonical catalog entry.
func (c *Catalog) Has(skill string) bool {
	_, ok := c.index[skill]

	return ok
}

// Len returns the number of canonical skills.
func (c *Catalog) Len() int { return len(c.skills) }
