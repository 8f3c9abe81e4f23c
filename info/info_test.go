package info

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannerfetch/inject"
	"bannerfetch/logging"
	"bannerfetch/render"
	"bannerfetch/sysinfo"
)

type fakeProbe struct {
	pairs      []inject.Pair
	prepareErr error
	prepared   bool
}

func (f *fakeProbe) Prepare() error {
	f.prepared = true
	return f.prepareErr
}

func (f *fakeProbe) Publish(c *inject.Context) error {
	return inject.PublishAll(c, f.pairs...)
}

func source(text string) render.Source {
	return render.Source{Name: "test", Text: text}
}

func TestDefaultOrder_RespectsDependencies(t *testing.T) {
	require.NoError(t, sysinfo.ValidateOrder(DefaultOrder))
}

func TestNew_RecordsConstructionOrder(t *testing.T) {
	i := New(WithTemplateSource(source("")))
	defer i.Close()

	assert.Equal(t, DefaultOrder, i.Order())
	assert.NoError(t, sysinfo.ValidateOrder(i.Order()))
	assert.NotNil(t, i.Distro())
}

func TestPrepare_RoundTripsDimensions(t *testing.T) {
	i := New(WithProbes(), WithTemplateSource(source("XX\nX")))
	defer i.Close()

	require.NoError(t, i.Prepare())
	assert.Equal(t, "XX\nX", i.Rendered())
	assert.Equal(t, 2, i.Width())
	assert.Equal(t, 2, i.Height())

	c := i.Context()
	require.NoError(t, i.Publish(c))

	w, ok := c.Lookup("info.width")
	require.True(t, ok)
	assert.Equal(t, "2", w)
	assert.Equal(t, "2", c.Env()["info_height"])
	assert.Equal(t, "2", c.Lua().GetGlobal("infoWidth").String())

	out, err := render.NewRenderer(c).Render(source("W=${info.width} H=${info.height}"))
	require.NoError(t, err)
	assert.Equal(t, "W=2 H=2", out)
}

func TestPrepare_IgnoresControlSequencesInWidth(t *testing.T) {
	i := New(WithProbes(), WithTemplateSource(source("\x1b[1;31mab\x1b[0m\nü")))
	defer i.Close()

	require.NoError(t, i.Prepare())
	assert.Equal(t, 2, i.Width())
	assert.Equal(t, 2, i.Height())
}

func TestPrepare_AbsentProbesPublishNothing(t *testing.T) {
	baseline := New(WithProbes(), WithTemplateSource(source("")))
	defer baseline.Close()
	require.NoError(t, baseline.Prepare())

	i := New(
		WithProbes(
			Probe{Name: sysinfo.WMProbe, Injector: inject.None[*sysinfo.WM]()},
			Probe{Name: sysinfo.GPUProbe, Injector: inject.None[*sysinfo.GPUs]()},
		),
		WithTemplateSource(source("")),
	)
	defer i.Close()
	require.NoError(t, i.Prepare())

	assert.Equal(t, baseline.Context().Vars(), i.Context().Vars())
}

func TestPrepare_PublishesUserAndHostFirst(t *testing.T) {
	var seen []string
	record := func(name string) Probe {
		return Probe{Name: name, Injector: &orderProbe{name: name, seen: &seen}}
	}
	i := New(
		WithPalette(nil),
		WithProbes(record(sysinfo.KernelProbe), record(sysinfo.UserProbe), record(sysinfo.HostProbe), record(sysinfo.DistroProbe)),
		WithTemplateSource(source("")),
	)
	defer i.Close()

	require.NoError(t, i.Prepare())
	assert.Equal(t, []string{sysinfo.UserProbe, sysinfo.HostProbe, sysinfo.KernelProbe, sysinfo.DistroProbe}, seen)
	assert.Equal(t, []string{sysinfo.KernelProbe, sysinfo.UserProbe, sysinfo.HostProbe, sysinfo.DistroProbe}, i.Order())
}

type orderProbe struct {
	name string
	seen *[]string
}

func (o *orderProbe) Prepare() error { return nil }

func (o *orderProbe) Publish(*inject.Context) error {
	*o.seen = append(*o.seen, o.name)
	return nil
}

func TestPrepare_PrepareErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	later := &fakeProbe{}
	i := New(
		WithProbes(
			Probe{Name: "broken", Injector: &fakeProbe{prepareErr: boom}},
			Probe{Name: "later", Injector: later},
		),
		WithTemplateSource(source("x")),
	)
	defer i.Close()

	err := i.Prepare()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, later.prepared)
	assert.Empty(t, i.Rendered())
}

func TestPrepare_PublishErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	i := New(
		WithLogger(logging.NewWithWriter(&buf, slog.LevelWarn)),
		WithProbes(Probe{Name: "mixed", Injector: &fakeProbe{pairs: []inject.Pair{
			{Key: "ok", Value: "yes"},
			{Key: "bad", Value: struct{}{}},
			{Key: "end", Value: "function"},
		}}}),
		WithTemplateSource(source("${ok}")),
	)
	defer i.Close()

	require.NoError(t, i.Prepare())
	assert.Equal(t, "yes", i.Rendered())
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Failed to publish fact")))
	assert.Contains(t, buf.String(), "probe=mixed")
}

func TestPrepare_MissingOverrideUsesDefault(t *testing.T) {
	i := New(
		WithProbes(Probe{Name: sysinfo.UserProbe, Injector: &fakeProbe{pairs: []inject.Pair{
			{Key: "user", Value: "alice"},
			{Key: "host", Value: "box"},
		}}}),
		WithTemplatePath(filepath.Join(t.TempDir(), "info.tmpl")),
	)
	defer i.Close()

	require.NoError(t, i.Prepare())
	assert.Contains(t, i.Rendered(), "alice@box\n---------\n")
	assert.Greater(t, i.Height(), 1)
}

func TestPrepare_OverrideIsRendered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("custom ${user}"), 0o644))

	i := New(
		WithProbes(Probe{Name: sysinfo.UserProbe, Injector: &fakeProbe{pairs: []inject.Pair{{Key: "user", Value: "bob"}}}}),
		WithTemplatePath(path),
	)
	defer i.Close()

	require.NoError(t, i.Prepare())
	assert.Equal(t, "custom bob", i.Rendered())
}

func TestPrepare_UnreadableOverrideIsFatal(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}
	path := filepath.Join(t.TempDir(), "info.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("hidden"), 0o000))

	i := New(WithProbes(), WithTemplatePath(path))
	defer i.Close()

	err := i.Prepare()
	var readErr *render.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.Empty(t, i.Rendered())
}

func TestPrepare_ExpansionErrorIsFatal(t *testing.T) {
	i := New(WithProbes(), WithTemplateSource(source("%{ this is not lua }")))
	defer i.Close()

	err := i.Prepare()
	var expandErr *render.ExpandError
	require.ErrorAs(t, err, &expandErr)
	assert.Equal(t, "test", expandErr.Source)
}
