package render

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannerfetch/inject"
)

func newContext(t *testing.T) *inject.Context {
	t.Helper()
	c := inject.NewContext()
	t.Cleanup(c.Close)
	return c
}

func render(t *testing.T, c *inject.Context, text string) (string, error) {
	t.Helper()
	return NewRenderer(c).Render(Source{Name: "test", Text: text})
}

func TestRender_Variables(t *testing.T) {
	c := newContext(t)
	require.NoError(t, c.Set("info.width", 2))
	require.NoError(t, c.Set("info.height", 2))

	got, err := render(t, c, "W=${info.width} H=${info.height}")
	require.NoError(t, err)
	assert.Equal(t, "W=2 H=2", got)
}

func TestRender_UnknownVariableIsEmpty(t *testing.T) {
	got, err := render(t, newContext(t), "[${nope}]")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestRender_Escapes(t *testing.T) {
	c := newContext(t)
	require.NoError(t, c.Set("user", "alice"))

	got, err := render(t, c, `\${user} \%{x} \\ ${user} 100%`)
	require.NoError(t, err)
	assert.Equal(t, `${user} %{x} \ alice 100%`, got)
}

func TestRender_LuaExpression(t *testing.T) {
	c := newContext(t)
	require.NoError(t, c.Set("info.width", 40))

	got, err := render(t, c, "%{infoWidth * 2}|%{ {1, 2} ~= nil }")
	require.NoError(t, err)
	assert.Equal(t, "80|true", got)
}

func TestRender_LuaChunkPrints(t *testing.T) {
	c := newContext(t)
	require.NoError(t, c.Set("gpus", []string{"a", "b"}))

	got, err := render(t, c, "%{for i = 1, #gpus do print(i, gpus[i]) end}")
	require.NoError(t, err)
	assert.Equal(t, "1\ta\n2\tb", got)
}

func TestRender_LuaPrintRestored(t *testing.T) {
	c := newContext(t)
	before := c.Lua().GetGlobal("print")

	_, err := render(t, c, `%{print("x")}`)
	require.NoError(t, err)
	assert.Equal(t, before, c.Lua().GetGlobal("print"))
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unterminated variable", "abc ${user"},
		{"empty variable", "${ }"},
		{"unterminated lua", "%{ 1 + "},
		{"lua syntax", "%{ 1 + }"},
		{"lua runtime", `%{ error("boom") }`},
		{"unterminated command", "$(echo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := render(t, newContext(t), tc.in)
			require.Error(t, err)
			assert.Empty(t, got)
			var eerr *ExpandError
			assert.True(t, errors.As(err, &eerr))
		})
	}
}

func TestRender_CommandSeesShellEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	c := newContext(t)
	require.NoError(t, c.Set("info.width", 7))

	got, err := render(t, c, "[$(printf '%s\\n' \"$info_width\")]")
	require.NoError(t, err)
	assert.Equal(t, "[7]", got)

	_, err = render(t, c, "$(exit 3)")
	assert.Error(t, err)
}

func TestLoadSource_MissingOverrideUsesDefault(t *testing.T) {
	src, err := LoadSource(filepath.Join(t.TempDir(), "info.tmpl"))
	require.NoError(t, err)
	assert.False(t, src.Override)
	assert.Equal(t, DefaultName, src.Name)
	assert.NotEmpty(t, src.Text)

	src, err = LoadSource("")
	require.NoError(t, err)
	assert.False(t, src.Override)
}

func TestLoadSource_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("hi ${user}"), 0o644))

	src, err := LoadSource(path)
	require.NoError(t, err)
	assert.True(t, src.Override)
	assert.Equal(t, "hi ${user}", src.Text)
}

func TestLoadSource_UnreadableOverrideIsFatal(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	path := filepath.Join(t.TempDir(), "info.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("secret"), 0o000))

	src, err := LoadSource(path)
	require.Error(t, err)
	assert.Empty(t, src.Text)

	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, path, rerr.Path)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoadSource_DirectoryIsFatal(t *testing.T) {
	_, err := LoadSource(t.TempDir())
	var rerr *ReadError
	assert.True(t, errors.As(err, &rerr))
}

func TestRender_DefaultTemplate(t *testing.T) {
	c := newContext(t)
	for k, v := range map[string]any{
		"user": "alice", "host": "box",
		"color.bold": "", "color.title": "", "color.label": "", "color.reset": "", "color.bar": "",
		"distro.fullname": "Debian GNU/Linux 12", "kernel.version": "6.1.0",
		"gpus": []string{"GPU A", "GPU B"},
	} {
		require.NoError(t, c.Set(k, v))
	}

	got, err := NewRenderer(c).Render(Default())
	require.NoError(t, err)
	assert.Equal(t, "alice@box\n---------\nOS: Debian GNU/Linux 12\nKernel: 6.1.0\nGPU: GPU A\nGPU: GPU B\n\n", got)
}
