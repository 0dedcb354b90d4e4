package theme

// Palette is the resolved set of colour and gradient values that drives every
// visual decision downstream. Both renderers pull from the same palette so the
// live preview and the exported document stay visually identical.
type Palette struct {
	Name           string
	Primary        string
	Secondary      string
	Accent         string
	Background     string
	HeroBackground string
	CardBg         string
	CardBorder     string
	TextDark       string
	TextLight      string
}

func paletteFromTokens(name string, tokens map[string]string) Palette {
	return Palette{
		Name:           name,
		Primary:        tokens["primary"],
		Secondary:      tokens["secondary"],
		Accent:         tokens["accent"],
		Background:     tokens["background"],
		HeroBackground: tokens["heroBackground"],
		CardBg:         tokens["cardBg"],
		CardBorder:     tokens["cardBorder"],
		TextDark:       tokens["textDark"],
		TextLight:      tokens["textLight"],
	}
}
