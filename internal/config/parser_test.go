package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	prismerrors "github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

func TestParseTheme(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: ocean
description: "Cool blue panels"
frame:
  border: rounded
  padding: 1
  title_align: center
colors:
  border: "#1e90ff"
  content: white
gradient:
  position: vertical
  target: border
  stops: ["#003366", "#66ccff"]
`

	invalidYAML := `version: [1, 0]
name: broken
`

	missingRequired := `version: "1.0"
description: "no name"
`

	badVersion := `version: "beta"
name: bad-version
`

	badBorder := `version: "1.0"
name: bad-border
frame:
  border: wavy
`

	badColor := `version: "1.0"
name: bad-color
colors:
  border: "not a color"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, theme *Theme, err error)
	}{
		{
			name:     "valid theme is parsed",
			contents: validYAML,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.NoError(t, err)
				require.NotNil(t, theme)
				require.Equal(t, "ocean", theme.Name)
				require.Equal(t, "rounded", theme.Frame.Border)
				require.Equal(t, "#1e90ff", theme.Colors.Border)
				require.NotNil(t, theme.Gradient)
				require.Len(t, theme.Gradient.Stops, 2)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				var parseErr *prismerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "missing name returns validation error",
			contents: missingRequired,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "name")
			},
		},
		{
			name:     "schema version must follow major.minor",
			contents: badVersion,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
		{
			name:     "unknown border style is rejected",
			contents: badBorder,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "frame.border")
			},
		},
		{
			name:     "color descriptors are checked",
			contents: badColor,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "colors.border")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempTheme(t, tc.contents)
			theme, err := ParseTheme(path)
			tc.assert(t, theme, err)
		})
	}
}

func TestParseThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	var parseErr *prismerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func writeTempTheme(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
