package config

// ColorScheme defines the colors used for CLI output
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"`
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// One color per status
	NotStarted string `yaml:"not_started"`
	InProgress string `yaml:"in_progress"`
	Paused     string `yaml:"paused"`
	Completed  string `yaml:"completed"`

	Error string `yaml:"error"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:     "default",
		Accent:     "#7D56F4",
		Title:      "#FFFDF5",
		Subtle:     "#6B7280",
		Normal:     "#E5E7EB",
		NotStarted: "#9CA3AF",
		InProgress: "#3B82F6",
		Paused:     "#EAB308",
		Completed:  "#22C55E",
		Error:      "#EF4444",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:     "monochrome",
		Accent:     "#FFFFFF",
		Title:      "#FFFFFF",
		Subtle:     "#808080",
		Normal:     "#D0D0D0",
		NotStarted: "#808080",
		InProgress: "#D0D0D0",
		Paused:     "#A0A0A0",
		Completed:  "#FFFFFF",
		Error:      "#FFFFFF",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.NotStarted, preset.NotStarted)
	fill(&c.InProgress, preset.InProgress)
	fill(&c.Paused, preset.Paused)
	fill(&c.Completed, preset.Completed)
	fill(&c.Error, preset.Error)
}
