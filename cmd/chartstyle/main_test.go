package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChartConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	content := "revenue:\n  label: Revenue\n  color: \"#3366ff\"\nnotes:\n  label: Notes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_WritesScopedCSS_ByDefault(t *testing.T) {
	path := writeChartConfig(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-scope", "chart-cli", path}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "[data-chart=chart-cli] {")
	assert.Contains(t, stdout.String(), "--color-revenue: #3366ff;")
	assert.Contains(t, stdout.String(), ".dark [data-chart=chart-cli]")
	assert.NotContains(t, stdout.String(), "--color-notes")
}

func TestRun_WritesPreview_When_PreviewFlagSet(t *testing.T) {
	path := writeChartConfig(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-preview", "-theme", "dark", path}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "chartstyle preview (dark theme)")
	assert.Contains(t, stdout.String(), "Revenue")
}

func TestRun_Fails_WithUsefulErrors(t *testing.T) {
	path := writeChartConfig(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing config argument", []string{}, 2, "expected exactly one chart config file"},
		{"unreadable config", []string{filepath.Join(t.TempDir(), "nope.yaml")}, 1, "reading chart config"},
		{"unknown theme", []string{"-theme", "sepia", path}, 1, "unknown theme"},
		{"live without tty", []string{"-live", path}, 1, "needs a terminal"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			assert.Equal(t, tc.wantCode, code)
			assert.Contains(t, stderr.String(), tc.wantErr)
		})
	}
}

func TestRun_PrintsVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-version"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "chartstyle")
}
