package theme

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantLabels(t *testing.T) {
	assert.Equal(t, []string{"Light", "Dark", "Custom"}, Labels())
	assert.Equal(t, "Variant(7)", Variant(7).String())

	var zero Variant
	assert.Equal(t, Light, zero)
}

func TestParse(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := Parse("Solarized")
	assert.Error(t, err)
}

func TestCustomPalette(t *testing.T) {
	p := PaletteFor(Custom)
	assert.Equal(t, CustomPalette, p)

	// near-black blue-gray background, near-white text
	assert.Less(t, p.Background.R, p.Background.B)
	assert.Less(t, int(p.Background.B), 64)
	assert.Greater(t, int(p.Text.R), 200)
	assert.Equal(t, uint8(255), p.Danger.R)
	assert.Equal(t, uint8(255), p.Success.G)
}

func TestBuiltinPalettes(t *testing.T) {
	test.NewTempApp(t)

	light := PaletteFor(Light)
	dark := PaletteFor(Dark)

	assert.Equal(t, toNRGBA(fynetheme.DefaultTheme().Color(fynetheme.ColorNameBackground, fynetheme.VariantLight)), light.Background)
	assert.Equal(t, toNRGBA(fynetheme.DefaultTheme().Color(fynetheme.ColorNameBackground, fynetheme.VariantDark)), dark.Background)
	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEqual(t, light.Text, dark.Text)
}

func TestNewAppliesPalette(t *testing.T) {
	test.NewTempApp(t)

	for _, v := range Variants() {
		th := New(v)
		want := PaletteFor(v)

		// the requested variant is ignored: each theme pins its own palette
		for _, requested := range []fyne.ThemeVariant{fynetheme.VariantLight, fynetheme.VariantDark} {
			assert.Equal(t, want.Background, toNRGBA(th.Color(fynetheme.ColorNameBackground, requested)), v.String())
			assert.Equal(t, want.Text, toNRGBA(th.Color(fynetheme.ColorNameForeground, requested)), v.String())
			assert.Equal(t, want.Primary, toNRGBA(th.Color(fynetheme.ColorNamePrimary, requested)), v.String())
			assert.Equal(t, want.Success, toNRGBA(th.Color(fynetheme.ColorNameSuccess, requested)), v.String())
			assert.Equal(t, want.Danger, toNRGBA(th.Color(fynetheme.ColorNameError, requested)), v.String())
		}
	}
}

func TestCustomFallsBackToDark(t *testing.T) {
	test.NewTempApp(t)

	th := New(Custom)
	want := fynetheme.DefaultTheme().Color(fynetheme.ColorNameButton, fynetheme.VariantDark)
	assert.Equal(t, toNRGBA(want), toNRGBA(th.Color(fynetheme.ColorNameButton, fynetheme.VariantLight)))
	assert.Equal(t, fynetheme.DefaultTheme().Size(fynetheme.SizeNameText), th.Size(fynetheme.SizeNameText))
}
