package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Semantic
		Success: "#FFFFFF",
		Warning: "#D0D0D0",
		Error:   "#FFFFFF",

		// UI elements
		Border: "#585858",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Lanes: map[string]string{
			"gray":   "#D0D0D0",
			"blue":   "#D0D0D0",
			"purple": "#D0D0D0",
			"green":  "#D0D0D0",
			"yellow": "#D0D0D0",
			"red":    "#D0D0D0",
			"pink":   "#D0D0D0",
			"orange": "#D0D0D0",
		},
	}
}
