package domain

import (
	"strings"
	"testing"
)

func validManifest() Manifest {
	return Manifest{
		Name:    "bell",
		Version: "1.0.0",
		Binary:  "/usr/local/bin/tomado-bell",
		SHA256:  strings.Repeat("ab", 32),
		Enabled: true,
		Events:  []EventKind{EventSessionCompleted, EventBreakEnded},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Manifest)
	}{
		{"missing name", func(m *Manifest) { m.Name = "" }},
		{"missing version", func(m *Manifest) { m.Version = "" }},
		{"missing binary", func(m *Manifest) { m.Binary = "" }},
		{"bad checksum", func(m *Manifest) { m.SHA256 = "FFFF" }},
		{"no events", func(m *Manifest) { m.Events = nil }},
		{"unknown event", func(m *Manifest) { m.Events = []EventKind{"session_exploded"} }},
		{"duplicate event", func(m *Manifest) { m.Events = []EventKind{EventBreakEnded, EventBreakEnded} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := validManifest()
			tc.mutate(&m)
			if err := m.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSubscribedTo(t *testing.T) {
	t.Parallel()
	m := validManifest()
	if !m.SubscribedTo(EventSessionCompleted) {
		t.Fatal("expected subscription to session_completed")
	}
	if m.SubscribedTo(EventSessionStarted) {
		t.Fatal("unexpected subscription to session_started")
	}
}
