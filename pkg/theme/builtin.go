package theme

func builtins() []Palette {
	return []Palette{nordPalette(), gruvboxPalette(), draculaPalette(), matrixPalette()}
}

// nordPalette returns the arctic blue Nord palette.
func nordPalette() Palette {
	return Palette{
		Name:       Nord,
		Background: "#2e3440",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Title:       "#81a1c1",

		OK:    "#a3be8c",
		Warn:  "#ebcb8b",
		Info:  "#5e81ac",
		Error: "#bf616a",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// gruvboxPalette returns the warm retro Gruvbox palette.
func gruvboxPalette() Palette {
	return Palette{
		Name:       Gruvbox,
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#fabd2f",

		OK:    "#b8bb26",
		Warn:  "#fabd2f",
		Info:  "#83a598",
		Error: "#fb4934",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// draculaPalette returns the Dracula palette.
func draculaPalette() Palette {
	return Palette{
		Name:       Dracula,
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Border:      "#44475a",
		BorderFocus: "#bd93f9",
		Title:       "#ff79c6",

		OK:    "#50fa7b",
		Warn:  "#f1fa8c",
		Info:  "#8be9fd",
		Error: "#ff5555",

		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}

// matrixPalette is green phosphor on black.
func matrixPalette() Palette {
	return Palette{
		Name:       Matrix,
		Background: "#000000",
		Foreground: "#00ff41",
		Dim:        "#008f11",
		Accent:     "#00ff41",

		Border:      "#003b00",
		BorderFocus: "#00ff41",
		Title:       "#39ff14",

		OK:    "#00ff41",
		Warn:  "#d4ff00",
		Info:  "#00b32c",
		Error: "#ff3131",

		HelpKey:  "#00ff41",
		HelpDesc: "#008f11",
	}
}
