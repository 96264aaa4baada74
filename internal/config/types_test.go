package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/frame"
	"github.com/alexisbeaulieu97/prismbox/internal/gradient"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
	prismerrors "github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.NoError(t, ValidateTheme(theme))

	spec, err := theme.Spec([]string{"hello"}, "")
	require.NoError(t, err)
	assert.Equal(t, "rounded", spec.Border)
	assert.Equal(t, 1, spec.Padding)
	assert.Nil(t, spec.BorderColor)
	assert.Nil(t, spec.Gradient)

	lines, err := frame.Render(spec)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestThemeSpecConversion(t *testing.T) {
	t.Parallel()

	theme := &Theme{
		Version: "1.0",
		Name:    "sunset",
		Frame: FrameConfig{
			Border:        "double",
			Padding:       2,
			Align:         "right",
			TitleAlign:    "center",
			TitleOverflow: "clip",
			MinWidth:      24,
		},
		Colors: ColorConfig{
			Border: "#1e90ff",
			Title:  "gold",
		},
		Gradient: &GradientConfig{
			Position: "horizontal",
			Target:   "border",
			Phase:    0.25,
			Rainbow:  true,
		},
	}
	require.NoError(t, ValidateTheme(theme))

	spec, err := theme.Spec([]string{"a", "b"}, "Sunset")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, spec.Lines)
	assert.Equal(t, "Sunset", spec.Title)
	assert.Equal(t, "double", spec.Border)
	assert.Equal(t, 24, spec.MinWidth)
	assert.Equal(t, grapheme.AlignRight, spec.Align)
	assert.Equal(t, grapheme.AlignCenter, spec.TitleAlign)
	assert.Equal(t, frame.OverflowClip, spec.TitleOverflow)
	assert.Equal(t, &color.RGB{R: 30, G: 144, B: 255}, spec.BorderColor)
	assert.Equal(t, &color.RGB{R: 255, G: 215, B: 0}, spec.TitleColor)
	assert.Nil(t, spec.ContentColor)

	require.NotNil(t, spec.Gradient)
	want := &gradient.Request{
		Position: gradient.Horizontal,
		Source:   gradient.Rainbow(),
		Target:   gradient.TargetBorder,
		Phase:    0.25,
	}
	assert.Equal(t, want, spec.Gradient)
}

func TestThemeSpecPaletteGradient(t *testing.T) {
	t.Parallel()

	theme := validTheme()
	theme.Gradient = &GradientConfig{
		Space: "hsv",
		Stops: []string{"red", "blue"},
	}
	require.NoError(t, ValidateTheme(theme))

	spec, err := theme.Spec([]string{"x"}, "")
	require.NoError(t, err)

	red := color.MustParse("red")
	blue := color.MustParse("blue")
	want := &gradient.Request{
		Position: gradient.Vertical,
		Source:   gradient.Palette([]color.RGB{red, blue}, gradient.SpaceHSV),
		Target:   gradient.TargetBoth,
	}
	assert.Equal(t, want, spec.Gradient)
}

func TestThemeSpecSurfacesBadValues(t *testing.T) {
	t.Parallel()

	t.Run("bad color", func(t *testing.T) {
		t.Parallel()

		theme := validTheme()
		theme.Colors.Content = "chartruese" // misspelled on purpose

		_, err := theme.Spec([]string{"x"}, "")
		require.Error(t, err)
		var colorErr *prismerrors.ColorSpecError
		require.ErrorAs(t, err, &colorErr)
	})

	t.Run("bad alignment", func(t *testing.T) {
		t.Parallel()

		theme := validTheme()
		theme.Frame.Align = "middle"

		_, err := theme.Spec([]string{"x"}, "")
		require.Error(t, err)
		var validationErr *prismerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
