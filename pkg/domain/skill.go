package domain

import "sort"

// Skill is a canonical, normalized skill name such as "machine learning".
type Skill = string

// SkillSet is a set of canonical skills detected in one document.
// The zero value is not usable; create sets with NewSkillSet.
type SkillSet map[Skill]struct{}

// NewSkillSet returns a set holding the given skills.
func NewSkillSet(skills ...Skill) SkillSet {
	s := make(SkillSet, len(skills))
	for _, skill := range skills {
		s.Add(skill)
	}

	return s
}

// Add inserts skill into the set.
func (s SkillSet) Add(skill Skill) { s[skill] = struct{}{} }

// Has reports whether skill is in the set.
func (s SkillSet) Has(skill Skill) bool {
	_, ok := s[skill]

	return ok
}

// Len returns the number of skills in the set.
func (s SkillSet) Len() int { return len(s) }

// Intersect returns the skills present in both s and other.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if other.Has(skill) {
			out.Add(skill)
		}
	}

	return out
}

// Difference returns the skills of s that are not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if !other.Has(skill) {
			out.Add(skill)
		}
	}

	return out
}

// Sorted returns the skills in lexical order. It never returns nil so the
// result always encodes as an empty list rather than null.
func (s SkillSet) Sorted() []Skill {
	out := make([]Skill, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)

	return out
}
