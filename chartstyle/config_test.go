package chartstyle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viznest/chartstyle/chartstyle"
)

func TestParseConfig_DecodesSeries_When_YAMLIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := chartstyle.ParseConfig([]byte(`
revenue:
  label: Revenue
  color: "#3366ff"
churn:
  label: Churn
  icon: icon-churn
  theme:
    light: "#888888"
    dark: "#cccccc"
notes:
  label: Notes
`))
	require.NoError(t, err)
	require.Len(t, cfg, 3)

	assert.Equal(t, "Revenue", cfg["revenue"].Label)
	assert.Equal(t, "#3366ff", cfg["revenue"].Color.ColorFor(chartstyle.ThemeLight))
	assert.Equal(t, "#3366ff", cfg["revenue"].Color.ColorFor(chartstyle.ThemeDark))

	assert.Equal(t, "icon-churn", cfg["churn"].Icon)
	assert.Equal(t, "#888888", cfg["churn"].Color.ColorFor(chartstyle.ThemeLight))
	assert.Equal(t, "#cccccc", cfg["churn"].Color.ColorFor(chartstyle.ThemeDark))

	assert.True(t, cfg["notes"].Color.IsZero())
}

func TestParseConfig_Fails_When_EntryIsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "color and theme are mutually exclusive",
			yaml: `
revenue:
  color: "#111111"
  theme:
    dark: "#222222"
`,
			wantErr: chartstyle.ErrConflictingColor,
		},
		{
			name: "theme names outside the registry are rejected",
			yaml: `
revenue:
  theme:
    sepia: "#333333"
`,
			wantErr: chartstyle.ErrUnknownTheme,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := chartstyle.ParseConfig([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoadConfigFile_ReadsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("visitors:\n  label: Visitors\n  color: \"#10b981\"\n"), 0o644))

	cfg, err := chartstyle.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Visitors", cfg["visitors"].Label)

	_, err = chartstyle.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
