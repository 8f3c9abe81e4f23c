package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bannerfetch/ascii"
	"bannerfetch/config"
	"bannerfetch/info"
	"bannerfetch/logging"
)

type options struct {
	template string
	config   string
	logo     string
	gap      int
	noLogo   bool
	color    string
	debug    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "bannerfetch",
		Short:         "Show system information next to a distribution logo",
		Long:          `bannerfetch probes the machine, publishes every fact to a template, Lua and the shell, and prints the rendered info block beside an ASCII logo.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.template, "template", "", "Template file to render instead of ~/.config/bannerfetch/info.tmpl")
	flags.StringVar(&opts.config, "config", "", "Config file (default ~/.config/bannerfetch/config.yaml)")
	flags.StringVar(&opts.logo, "logo", "", "Logo to draw: "+strings.Join(ascii.Names(), ", "))
	flags.IntVar(&opts.gap, "gap", ascii.DefaultGap, "Number of spaces between logo and info")
	flags.BoolVar(&opts.noLogo, "no-logo", false, "Print the info block without a logo")
	flags.StringVar(&opts.color, "color", ascii.ColorAuto, "When to use colors: auto, always, never")
	flags.BoolVar(&opts.debug, "debug", false, "Log debug output to stderr")
	return cmd
}

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// settings merges the config file with the flags the user set explicitly.
func settings(cmd *cobra.Command, opts *options) (config.Config, error) {
	user := os.Getenv("USER")
	path := opts.config
	if path == "" {
		path = config.FilePath(user)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.Template = opts.template
	}
	if flags.Changed("logo") {
		cfg.Logo = opts.logo
	}
	if flags.Changed("gap") {
		cfg.Gap = opts.gap
	}
	if flags.Changed("no-logo") {
		cfg.NoLogo = opts.noLogo
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	if cfg.Template == "" {
		cfg.Template = config.InfoTemplatePath(user)
	}
	if cfg.Gap < 0 {
		return cfg, fmt.Errorf("invalid gap %d: must not be negative", cfg.Gap)
	}
	switch strings.ToLower(cfg.Color) {
	case ascii.ColorAuto, ascii.ColorAlways, ascii.ColorNever:
	default:
		return cfg, fmt.Errorf("invalid color mode %q: want auto, always or never", cfg.Color)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := settings(cmd, opts)
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	profile := ascii.ProfileFor(cfg.Color)

	fetch := info.New(
		info.WithLogger(logger),
		info.WithTemplatePath(cfg.Template),
		info.WithShell(cfg.Shell),
		info.WithPalette(ascii.NewPalette(profile)),
	)
	defer fetch.Close()

	if err := fetch.Prepare(); err != nil {
		return err
	}
	c := fetch.Context()
	if err := fetch.Publish(c); err != nil {
		logger.Warn("Failed to publish info", "error", err)
	}

	text, _ := c.Lookup("info")
	height := fetch.Height()
	if v, ok := c.Lookup("info.height"); ok {
		if h, err := strconv.Atoi(v); err == nil {
			height = h
		}
	}

	var logo []string
	if !cfg.NoLogo {
		id := cfg.Logo
		if id == "" && fetch.Distro() != nil {
			id = fetch.Distro().ID
		}
		logger.Debug("Selected logo", "id", id)
		logo = ascii.Logo(id, profile)
	}

	out := cmd.OutOrStdout()
	for _, line := range ascii.Compose(logo, text, height, cfg.Gap) {
		fmt.Fprintln(out, line)
	}
	return nil
}
