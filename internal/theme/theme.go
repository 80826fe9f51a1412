package theme

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Variant selects one of the fixed application themes. The zero value is Light.
type Variant int

const (
	Light Variant = iota
	Dark
	Custom
)

// Variants returns every theme in the order shown by the theme picker.
func Variants() []Variant {
	return []Variant{Light, Dark, Custom}
}

// Labels returns the picker labels for Variants.
func Labels() []string {
	variants := Variants()
	labels := make([]string, len(variants))
	for i, v := range variants {
		labels[i] = v.String()
	}
	return labels
}

func (v Variant) String() string {
	switch v {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	case Custom:
		return "Custom"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Parse maps a picker label back to its variant.
func Parse(label string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == label {
			return v, nil
		}
	}
	return Light, fmt.Errorf("unknown theme %q", label)
}

// Palette is the set of named colors that defines a theme.
type Palette struct {
	Background color.NRGBA
	Text       color.NRGBA
	Primary    color.NRGBA
	Success    color.NRGBA
	Danger     color.NRGBA
}

// CustomPalette is the fixed palette of the Custom theme.
var CustomPalette = Palette{
	Background: color.NRGBA{R: 31, G: 33, B: 41, A: 255},
	Text:       color.NRGBA{R: 230, G: 230, B: 230, A: 255},
	Primary:    color.NRGBA{R: 255, G: 51, B: 51, A: 255},
	Success:    color.NRGBA{R: 0, G: 255, B: 0, A: 255},
	Danger:     color.NRGBA{R: 255, G: 0, B: 0, A: 255},
}

// PaletteFor returns the colors a variant applies. Light and Dark read the
// toolkit's built-in palette, so a Fyne app must be running.
func PaletteFor(v Variant) Palette {
	switch v {
	case Dark:
		return builtinPalette(fynetheme.VariantDark)
	case Custom:
		return CustomPalette
	default:
		return builtinPalette(fynetheme.VariantLight)
	}
}

func builtinPalette(variant fyne.ThemeVariant) Palette {
	base := fynetheme.DefaultTheme()
	named := func(name fyne.ThemeColorName) color.NRGBA {
		return toNRGBA(base.Color(name, variant))
	}

	return Palette{
		Background: named(fynetheme.ColorNameBackground),
		Text:       named(fynetheme.ColorNameForeground),
		Primary:    named(fynetheme.ColorNamePrimary),
		Success:    named(fynetheme.ColorNameSuccess),
		Danger:     named(fynetheme.ColorNameError),
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
