package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFor_ConfiguredCategory(t *testing.T) {
	p := New(map[string]string{"Groceries": "#10B981"}, []string{"#111111", "#222222"})

	assert.Equal(t, "#10B981", p.ColorFor("Groceries", 1))
}

func TestColorFor_FallbackByPosition(t *testing.T) {
	p := New(nil, []string{"#111111", "#222222"})

	assert.Equal(t, "#111111", p.ColorFor("Dining", 0))
	assert.Equal(t, "#222222", p.ColorFor("Travel", 1))
	assert.Equal(t, "#111111", p.ColorFor("Health", 2))
	assert.Equal(t, "#111111", p.ColorFor("Health", -3))
}

func TestColorFor_EmptyFallbackUsesDefault(t *testing.T) {
	p := New(nil, nil)

	assert.Equal(t, DefaultColor, p.ColorFor("Anything", 5))
}

func TestAssign_IsDeterministic(t *testing.T) {
	p := New(map[string]string{"Senza Categoria": "#9CA3AF"}, []string{"#111111", "#222222", "#333333"})
	categories := []string{"Housing", "Senza Categoria", "Dining"}

	first := p.Assign(categories)
	second := p.Assign(categories)

	assert.Equal(t, []string{"#111111", "#9CA3AF", "#333333"}, first)
	assert.Equal(t, first, second)
}

func TestNew_CopiesConfiguredColors(t *testing.T) {
	colors := map[string]string{"Dining": "#F59E0B"}
	p := New(colors, nil)
	colors["Dining"] = "#000000"

	assert.Equal(t, "#F59E0B", p.ColorFor("Dining", 0))
}
