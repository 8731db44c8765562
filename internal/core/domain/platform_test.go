package domain_test

import (
	"testing"

	"go.trai.ch/lockstep/internal/core/domain"
)

func TestBaselineVirtualCapabilities(t *testing.T) {
	linux := domain.BaselineVirtualCapabilities(domain.PlatformLinux64)
	names := make(map[string]bool, len(linux))
	for _, vc := range linux {
		names[vc.Name] = true
	}
	for _, want := range []string{"__unix", "__linux", "__glibc"} {
		if !names[want] {
			t.Errorf("linux-64 baseline missing %s", want)
		}
	}

	win := domain.BaselineVirtualCapabilities(domain.PlatformWin64)
	if len(win) != 1 || win[0].Name != "__win" {
		t.Errorf("unexpected win-64 baseline: %v", win)
	}

	if caps := domain.BaselineVirtualCapabilities(domain.PlatformNoArch); caps != nil {
		t.Errorf("noarch has no baseline, got %v", caps)
	}
}

func TestSystemRequirements_Minimum(t *testing.T) {
	reqs := domain.SystemRequirements{
		"python": "3.10",
		"bogus":  "not-a-version",
	}

	v, ok := reqs.Minimum("python")
	if !ok {
		t.Fatal("expected python minimum")
	}
	if v.Major() != 3 || v.Minor() != 10 {
		t.Errorf("unexpected version %s", v)
	}

	if _, ok := reqs.Minimum("missing"); ok {
		t.Error("expected miss for undeclared capability")
	}
	if _, ok := reqs.Minimum("bogus"); ok {
		t.Error("expected miss for unparseable version")
	}
}
