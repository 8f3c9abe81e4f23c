// Package info drives the probes, renders the info template and measures
// the result.
package info

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"bannerfetch/ascii"
	"bannerfetch/config"
	"bannerfetch/inject"
	"bannerfetch/logging"
	"bannerfetch/render"
	"bannerfetch/sysinfo"
)

// Probe is a named fact provider.
type Probe struct {
	Name     string
	Injector inject.Injector
}

// DefaultOrder is the order New constructs the probes in. Every probe
// comes after the probes its constructor takes.
var DefaultOrder = []string{
	sysinfo.KernelProbe,
	sysinfo.UserProbe,
	sysinfo.HostProbe,
	sysinfo.DistroProbe,
	sysinfo.UptimeProbe,
	sysinfo.PackageManagersProbe,
	sysinfo.ShellProbe,
	sysinfo.ResolutionProbe,
	sysinfo.WMProbe,
	sysinfo.DEProbe,
	sysinfo.CPUProbe,
	sysinfo.GPUProbe,
}

// Info owns the Context for one run. It is itself an inject.Injector: its
// Publish writes the rendered block and its dimensions.
type Info struct {
	ctx          *inject.Context
	log          *slog.Logger
	templatePath string
	source       *render.Source
	shell        string
	palette      inject.Injector

	probes   []Probe
	order    []string
	distro   *sysinfo.Distro
	replaced bool

	rendered string
	width    int
	height   int
}

// Option configures an Info.
type Option func(*Info)

// WithTemplatePath sets the override template location. A path that does
// not exist selects the bundled template.
func WithTemplatePath(path string) Option {
	return func(i *Info) { i.templatePath = path }
}

// WithTemplateSource renders src instead of loading a template from disk.
func WithTemplateSource(src render.Source) Option {
	return func(i *Info) { i.source = &src }
}

// WithLogger sets the logger for the Info and its Context.
func WithLogger(l *slog.Logger) Option {
	return func(i *Info) { i.log = l }
}

// WithShell sets the shell that runs $(...) substitutions.
func WithShell(shell string) Option {
	return func(i *Info) { i.shell = shell }
}

// WithPalette replaces the color palette published before the probes.
func WithPalette(p inject.Injector) Option {
	return func(i *Info) { i.palette = p }
}

// WithProbes replaces the probe set. The probes are used in the given order.
func WithProbes(probes ...Probe) Option {
	return func(i *Info) {
		i.replaced = true
		i.probes = append([]Probe(nil), probes...)
		i.order = make([]string, len(probes))
		for n, p := range probes {
			i.order[n] = p.Name
			if d, ok := p.Injector.(*sysinfo.Distro); ok {
				i.distro = d
			}
		}
	}
}

// New constructs every probe. Construction does the probing; nothing here
// fails, missing facts show up as empty values or absent probes.
func New(opts ...Option) *Info {
	i := &Info{
		log:          logging.NewNop(),
		templatePath: config.InfoTemplatePath(os.Getenv("USER")),
		shell:        render.DefaultShell,
		palette:      ascii.NewPalette(termenv.Ascii),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.ctx = inject.NewContext(inject.WithLogger(i.log))

	if !i.replaced {
		i.construct()
	}
	return i
}

func (i *Info) add(name string, inj inject.Injector) {
	i.log.Debug("Constructed probe", "probe", name)
	i.probes = append(i.probes, Probe{Name: name, Injector: inj})
	i.order = append(i.order, name)
}

func (i *Info) construct() {
	k := sysinfo.NewKernel()
	i.add(sysinfo.KernelProbe, k)
	i.add(sysinfo.UserProbe, sysinfo.NewUser())
	i.add(sysinfo.HostProbe, sysinfo.NewHost())
	d := sysinfo.NewDistro(k)
	i.distro = d
	i.add(sysinfo.DistroProbe, d)
	i.add(sysinfo.UptimeProbe, sysinfo.NewUptime(k))
	i.add(sysinfo.PackageManagersProbe, sysinfo.NewPackageManagers(k))
	i.add(sysinfo.ShellProbe, sysinfo.NewShell(k))
	i.add(sysinfo.ResolutionProbe, sysinfo.NewResolution())
	i.add(sysinfo.WMProbe, sysinfo.NewWM(k))
	i.add(sysinfo.DEProbe, sysinfo.NewDE(k, d))
	i.add(sysinfo.CPUProbe, sysinfo.NewCPU(k))
	i.add(sysinfo.GPUProbe, sysinfo.NewGPU(k))
}

// Prepare injects every fact, renders the template and measures it.
//
// The palette goes first, then user and host, then the remaining probes in
// construction order. A Prepare failure aborts with the probe's name; a
// Publish failure is logged and the run continues.
func (i *Info) Prepare() error {
	steps := make([]Probe, 0, len(i.probes)+1)
	if i.palette != nil {
		steps = append(steps, Probe{Name: "palette", Injector: i.palette})
	}
	for _, p := range i.probes {
		if p.Name == sysinfo.UserProbe || p.Name == sysinfo.HostProbe {
			steps = append(steps, p)
		}
	}
	for _, p := range i.probes {
		if p.Name != sysinfo.UserProbe && p.Name != sysinfo.HostProbe {
			steps = append(steps, p)
		}
	}

	for _, p := range steps {
		if err := p.Injector.Prepare(); err != nil {
			return fmt.Errorf("failed to prepare %s: %w", p.Name, err)
		}
		if err := p.Injector.Publish(i.ctx); err != nil {
			i.logPublishError(p.Name, err)
		}
	}

	src, err := i.loadSource()
	if err != nil {
		return err
	}
	i.log.Debug("Rendering template", "source", src.Name)

	out, err := render.NewRenderer(i.ctx, render.WithShell(i.shell)).Render(src)
	if err != nil {
		return err
	}
	i.rendered = out
	i.width, i.height = render.Measure(out)
	return nil
}

func (i *Info) loadSource() (render.Source, error) {
	if i.source != nil {
		return *i.source, nil
	}
	return render.LoadSource(i.templatePath)
}

func (i *Info) logPublishError(probe string, err error) {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			i.log.Warn("Failed to publish fact", "probe", probe, "error", e)
		}
		return
	}
	i.log.Warn("Failed to publish fact", "probe", probe, "error", err)
}

// Publish writes the rendered block as "info" and its size as "info.width"
// and "info.height".
func (i *Info) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "info", Value: i.rendered},
		inject.Pair{Key: "info.width", Value: i.width},
		inject.Pair{Key: "info.height", Value: i.height},
	)
}

// Context returns the Context the probes published into.
func (i *Info) Context() *inject.Context { return i.ctx }

// Rendered returns the expanded template.
func (i *Info) Rendered() string { return i.rendered }

// Width returns the widest rendered line, ignoring control sequences.
func (i *Info) Width() int { return i.width }

// Height returns the number of rendered lines.
func (i *Info) Height() int { return i.height }

// Distro returns the distribution probe, or nil when the probe set has none.
func (i *Info) Distro() *sysinfo.Distro { return i.distro }

// Order returns the probe names in construction order.
func (i *Info) Order() []string {
	return append([]string(nil), i.order...)
}

// Close releases the Context.
func (i *Info) Close() { i.ctx.Close() }
