package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_RendersTemplateWithoutLogo(t *testing.T) {
	t.Setenv("USER", "alice")
	tmpl := writeFile(t, "info.tmpl", "hello ${user}\nW=%{infoWidth == nil}")
	cfg := filepath.Join(t.TempDir(), "missing.yaml")

	out, _, err := execute(t, "--config", cfg, "--template", tmpl, "--no-logo", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "hello alice\nW=true\n", out)
}

func TestRoot_ComposesLogo(t *testing.T) {
	t.Setenv("USER", "alice")
	tmpl := writeFile(t, "info.tmpl", "${user}")
	cfg := filepath.Join(t.TempDir(), "missing.yaml")

	out, _, err := execute(t, "--config", cfg, "--template", tmpl, "--logo", "arch", "--gap", "2", "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasSuffix(lines[0], "  alice"), lines[0])
	assert.NotContains(t, out, "\x1b[")
}

func TestRoot_ConfigFileIsApplied(t *testing.T) {
	t.Setenv("USER", "alice")
	tmpl := writeFile(t, "info.tmpl", "from config")
	cfg := writeFile(t, "config.yaml", "no_logo: true\ncolor: never\ntemplate: "+tmpl+"\n")

	out, _, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "from config\n", out)
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("USER", "alice")
	fromConfig := writeFile(t, "config.tmpl", "from config")
	fromFlag := writeFile(t, "flag.tmpl", "from flag")
	cfg := writeFile(t, "config.yaml", "no_logo: true\ncolor: never\ntemplate: "+fromConfig+"\n")

	out, _, err := execute(t, "--config", cfg, "--template", fromFlag)
	require.NoError(t, err)
	assert.Equal(t, "from flag\n", out)
}

func TestRoot_Errors(t *testing.T) {
	t.Setenv("USER", "alice")
	cfg := filepath.Join(t.TempDir(), "missing.yaml")

	t.Run("bad color", func(t *testing.T) {
		out, _, err := execute(t, "--config", cfg, "--color", "sometimes")
		assert.ErrorContains(t, err, "invalid color mode")
		assert.Empty(t, out)
	})

	t.Run("negative gap", func(t *testing.T) {
		out, _, err := execute(t, "--config", cfg, "--gap", "-1")
		assert.ErrorContains(t, err, "invalid gap")
		assert.Empty(t, out)
	})

	t.Run("template fails to expand", func(t *testing.T) {
		tmpl := writeFile(t, "info.tmpl", "${user")
		out, _, err := execute(t, "--config", cfg, "--template", tmpl, "--color", "never")
		assert.ErrorContains(t, err, "unterminated")
		assert.Empty(t, out)
	})

	t.Run("unreadable template", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permissions are not enforced")
		}
		tmpl := filepath.Join(t.TempDir(), "info.tmpl")
		require.NoError(t, os.WriteFile(tmpl, []byte("x"), 0o000))
		out, _, err := execute(t, "--config", cfg, "--template", tmpl, "--color", "never")
		assert.ErrorContains(t, err, "failed to read template")
		assert.Empty(t, out)
	})

	t.Run("arguments", func(t *testing.T) {
		_, _, err := execute(t, "--config", cfg, "extra")
		assert.Error(t, err)
	})
}
