package theme

// Purple is the default light palette.
var Purple = Theme{
	Name: "PurpleTheme",
	Tokens: Tokens{
		Background: "#FFFFFF",
		Surface:    "#F4F1FA",
		Text:       "#1F2230",
		TextMuted:  "#6D7383",
		Border:     "#D8D2E8",
		Primary:    "#7C3AED",
		Secondary:  "#5B8DEF",
		Focus:      "#6D28D9",
		Success:    "#16A34A",
		Warning:    "#D97706",
		Error:      "#DC2626",
		Info:       "#2563EB",
	},
}
