// Package palette assigns chart colors to spending categories.
package palette

// DefaultColor is used when no fallback palette is configured.
const DefaultColor = "#6B7280"

// Palette maps category names to colors, falling back to a positional palette
// for categories without a configured color.
type Palette struct {
	colors   map[string]string
	fallback []string
}

func New(colors map[string]string, fallback []string) *Palette {
	c := make(map[string]string, len(colors))
	for name, color := range colors {
		c[name] = color
	}

	f := fallback
	if len(f) == 0 {
		f = []string{DefaultColor}
	}

	return &Palette{colors: c, fallback: f}
}

// ColorFor returns the configured color of category, else the fallback color
// at position, cycling through the fallback palette.
func (p *Palette) ColorFor(category string, position int) string {
	if color, ok := p.colors[category]; ok {
		return color
	}
	if position < 0 {
		position = 0
	}
	return p.fallback[position%len(p.fallback)]
}

// Assign colors an ordered list of categories.
func (p *Palette) Assign(categories []string) []string {
	out := make([]string, len(categories))
	for i, category := range categories {
		out[i] = p.ColorFor(category, i)
	}
	return out
}
