package sysinfo

import (
	"os"
	"strings"

	"bannerfetch/inject"
)

// Host identifies the machine: its network name and, when the firmware
// exposes it, the vendor and product model.
type Host struct {
	Name  string
	Model string
}

// NewHost reads the hostname and hardware model.
func NewHost() *Host {
	h := &Host{Model: hostModel()}
	if name, err := os.Hostname(); err == nil {
		h.Name = name
	}
	return h
}

func (h *Host) Prepare() error { return nil }

func (h *Host) Publish(c *inject.Context) error {
	pairs := []inject.Pair{{Key: "host", Value: h.Name}}
	if h.Model != "" {
		pairs = append(pairs, inject.Pair{Key: "host.model", Value: h.Model})
	}
	return inject.PublishAll(c, pairs...)
}

// placeholderModels are strings firmware vendors ship instead of a real
// product name.
var placeholderModels = []string{
	"to be filled by o.e.m.",
	"to be filled by oem",
	"default string",
	"system product name",
	"not applicable",
	"none",
}

// cleanModel joins vendor, name and version while dropping firmware placeholders.
func cleanModel(vendor, name, version string) string {
	keep := func(s string) string {
		s = strings.TrimSpace(s)
		for _, p := range placeholderModels {
			if strings.EqualFold(s, p) {
				return ""
			}
		}
		return s
	}
	return joinNonEmpty(" ", keep(vendor), keep(name), keep(version))
}
