package engine

import (
	"regexp"
	"strings"
)

// sectionOther collects any text appearing before the first heading
const sectionOther = "OTHER"

var headingPattern = regexp.MustCompile(`^##\s+(.+)$`)

// sectionMap is an ordered mapping of UPPERCASE heading name to body text
type sectionMap struct {
	names  []string
	bodies map[string]string
}

// splitSections partitions resume markdown into named sections. A line
// matching `## Heading` starts a new section; everything else accumulates
// into the current section's body. Missing headings are not an error —
// the document simply scores lower on section structure later.
func splitSections(markdown string) *sectionMap {
	sm := &sectionMap{bodies: make(map[string]string)}

	current := sectionOther
	builders := map[string]*strings.Builder{current: {}}
	sm.names = append(sm.names, current)

	for line := range strings.Lines(markdown) {
		line = strings.TrimRight(line, "\r\n")
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			current = strings.ToUpper(strings.TrimSpace(m[1]))
			if _, exists := builders[current]; !exists {
				builders[current] = &strings.Builder{}
				sm.names = append(sm.names, current)
			}
			continue
		}
		builders[current].WriteString(line)
		builders[current].WriteString("\n")
	}

	for name, b := range builders {
		sm.bodies[name] = strings.TrimSpace(b.String())
	}
	return sm
}

// body returns the text of a named section, or "" when absent
func (sm *sectionMap) body(name string) string {
	return sm.bodies[name]
}

// has reports whether any section heading contains the given
// uppercase fragment
func (sm *sectionMap) has(fragment string) bool {
	for _, name := range sm.names {
		if name != sectionOther && strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}
