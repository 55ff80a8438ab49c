package config

import "testing"

func TestGetVersion(t *testing.T) {
	if v := GetVersion(); v != "dev" {
		t.Errorf("expected default version dev, got %s", v)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != "dev" || info.Build != "unknown" || info.GitCommit != "unknown" {
		t.Errorf("unexpected default version info %+v", info)
	}
}

func TestGetFullVersion(t *testing.T) {
	expected := "dev (build: unknown, commit: unknown)"
	if fv := GetFullVersion(); fv != expected {
		t.Errorf("expected full version %q, got %q", expected, fv)
	}
}
