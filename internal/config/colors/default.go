package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF5F5F",

		// UI elements
		Border: "#5F87D7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Lanes: map[string]string{
			"gray":   "#9CA3AF",
			"blue":   "#3B82F6",
			"purple": "#A855F7",
			"green":  "#22C55E",
			"yellow": "#EAB308",
			"red":    "#EF4444",
			"pink":   "#EC4899",
			"orange": "#F97316",
		},
	}
}
