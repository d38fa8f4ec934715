package domain

import "strings"

// Colour is a named display colour.
type Colour struct {
	Name string `toml:"name" json:"name"`
	Hex  string `toml:"hex" json:"hex"`
}

// Palette is the ordered set of colours a task may use.
type Palette []Colour

// DefaultPalette returns the built-in colour palette.
func DefaultPalette() Palette {
	return Palette{
		{Name: "Dark Blue", Hex: "#1B3A6B"},
		{Name: "Steel Blue", Hex: "#4A90D9"},
		{Name: "Teal", Hex: "#2A7F7F"},
		{Name: "Slate Grey", Hex: "#5A6A7A"},
		{Name: "Charcoal", Hex: "#3C3C3C"},
	}
}

// FallbackHex is used for colour names missing from the palette.
const FallbackHex = "#1B3A6B"

// Has reports whether name is in the palette.
func (p Palette) Has(name string) bool {
	for _, c := range p {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Hex returns the display value for name, or FallbackHex.
func (p Palette) Hex(name string) string {
	for _, c := range p {
		if c.Name == name {
			return c.Hex
		}
	}
	return FallbackHex
}

// Names returns the colour names in palette order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for _, c := range p {
		names = append(names, c.Name)
	}
	return names
}

// Next returns the colour after name, wrapping around.
// Unknown names yield the first colour.
func (p Palette) Next(name string) string {
	if len(p) == 0 {
		return name
	}
	for i, c := range p {
		if c.Name == name {
			return p[(i+1)%len(p)].Name
		}
	}
	return p[0].Name
}

// Complexity is a named preset for the number of tasks in a new project.
type Complexity struct {
	Label     string `toml:"label" json:"label"`
	TaskCount int    `toml:"task_count" json:"taskCount"`
}

// DefaultComplexities returns the built-in project presets.
func DefaultComplexities() []Complexity {
	return []Complexity{
		{Label: "Quick Win (3 tasks)", TaskCount: 3},
		{Label: "Small Project (5 tasks)", TaskCount: 5},
		{Label: "Medium Project (10 tasks)", TaskCount: 10},
		{Label: "Large Project (15 tasks)", TaskCount: 15},
		{Label: "Enterprise (20 tasks)", TaskCount: 20},
	}
}

// FindComplexity looks a preset up by label. The first word of a label
// (e.g. "small" for "Small Project (5 tasks)") also matches, ignoring case.
func FindComplexity(presets []Complexity, label string) (Complexity, error) {
	for _, c := range presets {
		if c.Label == label {
			return c, nil
		}
	}
	for _, c := range presets {
		fields := strings.Fields(c.Label)
		if len(fields) > 0 && strings.EqualFold(fields[0], label) {
			return c, nil
		}
	}
	return Complexity{}, ErrUnknownComplexity
}
