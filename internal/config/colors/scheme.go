package colors

// ColorScheme defines all configurable color values used by the CLI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers and highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Success string `yaml:"success"` // Created / moved confirmations
	Warning string `yaml:"warning"` // Medium priority, notices
	Error   string `yaml:"error"`   // High priority, failures

	// UI element colors
	Border string `yaml:"border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Lanes maps each column color name (gray, blue, ...) to a hex value
	Lanes map[string]string `yaml:"lanes"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Success, preset.Success)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
	fill(&c.Border, preset.Border)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)

	if c.Lanes == nil {
		c.Lanes = make(map[string]string, len(preset.Lanes))
	}
	for name, hex := range preset.Lanes {
		if c.Lanes[name] == "" {
			c.Lanes[name] = hex
		}
	}
}

// MergeFrom overrides values in c with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Success, other.Success)
	merge(&c.Warning, other.Warning)
	merge(&c.Error, other.Error)
	merge(&c.Border, other.Border)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)

	for name, hex := range other.Lanes {
		if hex == "" {
			continue
		}
		if c.Lanes == nil {
			c.Lanes = map[string]string{}
		}
		c.Lanes[name] = hex
	}
}

// Lane returns the hex value for a column color name, falling back to Subtle
func (c *ColorScheme) Lane(name string) string {
	if hex, ok := c.Lanes[name]; ok && hex != "" {
		return hex
	}
	return c.Subtle
}
