package styles

// Theme is the parsed styling for one surface. Unknown or malformed tokens
// are skipped rather than rejected: styling runs on the render path, where
// leniency beats strictness.
type Theme struct {
	// Colors holds every style entry that parsed as a color.
	Colors map[string]Color
	// Strings holds the remaining string tokens (font families, variants).
	Strings map[string]string
	// Numbers holds numeric tokens (scale factors, corner radii).
	Numbers map[string]float64
}

// ParseTheme collects the typed tokens of a raw style map. A nil or empty
// map yields an empty theme.
func ParseTheme(raw map[string]any) Theme {
	theme := Theme{
		Colors:  make(map[string]Color),
		Strings: make(map[string]string),
		Numbers: make(map[string]float64),
	}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			if color, ok := ParseColor(v); ok {
				theme.Colors[key] = color
				continue
			}
			theme.Strings[key] = v
		case float64:
			theme.Numbers[key] = v
		case int:
			theme.Numbers[key] = float64(v)
		}
	}
	return theme
}

// Color returns the named color and whether it was present.
func (t Theme) Color(name string) (Color, bool) {
	color, ok := t.Colors[name]
	return color, ok
}
