package themec

// ThemeContext is the merged, ordered set of themes that gets compiled.
// Iteration order is first-insertion order and theme names are unique.
type ThemeContext struct {
	themes []Theme
	index  map[string]int
}

// Themes returns the themes in insertion order.
func (c *ThemeContext) Themes() []Theme {
	return c.themes
}

// Len returns the number of themes.
func (c *ThemeContext) Len() int {
	return len(c.themes)
}

// Theme returns the theme with the given name.
func (c *ThemeContext) Theme(name string) (Theme, bool) {
	i, ok := c.index[name]
	if !ok {
		return Theme{}, false
	}
	return c.themes[i], true
}

// ContextBuilder accumulates themes from several documents into a
// ThemeContext. The first definition of a theme name wins; later definitions
// with the same name are dropped whole, without merging their colors.
type ContextBuilder struct {
	ctx *ThemeContext
}

// NewContextBuilder creates an empty builder.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{
		ctx: &ThemeContext{index: make(map[string]int)},
	}
}

// AddTheme inserts t unless a theme with the same name is already present.
// Reports whether t was inserted.
func (b *ContextBuilder) AddTheme(t Theme) bool {
	if _, exists := b.ctx.index[t.Name]; exists {
		return false
	}
	b.ctx.index[t.Name] = len(b.ctx.themes)
	b.ctx.themes = append(b.ctx.themes, t)
	return true
}

// AddDocument inserts every theme of doc in order and returns the names that
// were inserted and the names that were skipped as duplicates.
func (b *ContextBuilder) AddDocument(doc *Document) (added, skipped []string) {
	for _, t := range doc.Themes {
		if b.AddTheme(t) {
			added = append(added, t.Name)
		} else {
			skipped = append(skipped, t.Name)
		}
	}
	return added, skipped
}

// Context returns the accumulated context. The builder must not be used
// after calling Context.
func (b *ContextBuilder) Context() *ThemeContext {
	ctx := b.ctx
	b.ctx = nil
	return ctx
}

// Merge folds docs into a single ThemeContext with first-write-wins on theme
// names.
func Merge(docs ...*Document) *ThemeContext {
	b := NewContextBuilder()
	for _, doc := range docs {
		b.AddDocument(doc)
	}
	return b.Context()
}
