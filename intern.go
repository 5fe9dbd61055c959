package themec

// InternTable is the deduplicated, ordered set of every theme and color name
// in a ThemeContext. Artifacts refer to names by their position in this
// table.
type InternTable struct {
	strings []string
	index   map[string]uint32
	counts  map[string]int
}

// BuildInternTable walks ctx in order, visiting each theme name followed by
// its color names, and records every string the first time it is seen.
// Theme and color names share one namespace, so a color called like a theme
// reuses the theme's slot.
func BuildInternTable(ctx *ThemeContext) *InternTable {
	t := &InternTable{
		index:  make(map[string]uint32),
		counts: make(map[string]int),
	}
	for _, theme := range ctx.Themes() {
		t.add(theme.Name)
		for _, c := range theme.Colors {
			t.add(c.Name)
		}
	}
	return t
}

func (t *InternTable) add(s string) {
	t.counts[s]++
	if _, ok := t.index[s]; ok {
		return
	}
	t.index[s] = uint32(len(t.strings))
	t.strings = append(t.strings, s)
}

// Strings returns the interned strings in index order.
func (t *InternTable) Strings() []string {
	return t.strings
}

// Len returns the number of distinct strings.
func (t *InternTable) Len() int {
	return len(t.strings)
}

// Index returns the position of s in the table.
func (t *InternTable) Index(s string) (uint32, bool) {
	i, ok := t.index[s]
	return i, ok
}

// Count returns how many times s occurred while building the table.
func (t *InternTable) Count(s string) int {
	return t.counts[s]
}
