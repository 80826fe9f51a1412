package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// pinnedTheme renders the built-in theme with a fixed light or dark variant,
// ignoring the desktop's preference.
type pinnedTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *pinnedTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// paletteTheme overrides the palette colors and falls back to the built-in
// dark variant for everything else.
type paletteTheme struct {
	fyne.Theme
	palette Palette
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return t.palette.Background
	case fynetheme.ColorNameForeground:
		return t.palette.Text
	case fynetheme.ColorNamePrimary:
		return t.palette.Primary
	case fynetheme.ColorNameSuccess:
		return t.palette.Success
	case fynetheme.ColorNameError:
		return t.palette.Danger
	default:
		return t.Theme.Color(name, fynetheme.VariantDark)
	}
}

// New returns the Fyne theme that applies the variant's palette.
func New(v Variant) fyne.Theme {
	base := fynetheme.DefaultTheme()

	switch v {
	case Dark:
		return &pinnedTheme{Theme: base, variant: fynetheme.VariantDark}
	case Custom:
		return &paletteTheme{Theme: base, palette: CustomPalette}
	default:
		return &pinnedTheme{Theme: base, variant: fynetheme.VariantLight}
	}
}
