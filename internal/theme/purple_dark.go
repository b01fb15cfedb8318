package theme

// PurpleDark is the dark counterpart of Purple.
var PurpleDark = Theme{
	Name: "PurpleThemeDark",
	Dark: true,
	Tokens: Tokens{
		Background: "#14101F",
		Surface:    "#1B1530",
		Text:       "#E6EAF2",
		TextMuted:  "#B1B8C7",
		Border:     "#3A3F55",
		Primary:    "#A78BFA",
		Secondary:  "#7AA2F7",
		Focus:      "#C4B5FD",
		Success:    "#22C55E",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Info:       "#58A6FF",
	},
}
