package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tomado/internal/modules/hook/domain"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
}

func (f *fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, nil
}

type fakeHost struct {
	notified []string
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }

func (f *fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{}, nil
}

func (f *fakeHost) Notify(_ context.Context, manifest domain.Manifest, _ domain.Event) error {
	f.notified = append(f.notified, manifest.Name)
	return nil
}

func writeHookBinary(t *testing.T, dir, name string) (string, string) {
	t.Helper()
	path := filepath.Join(dir, name)
	payload := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write hook binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func TestSubscribersFiltersAndVerifies(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	goodPath, goodSum := writeHookBinary(t, dir, "good")
	tamperedPath, _ := writeHookBinary(t, dir, "tampered")

	store := &fakeManifestStore{manifests: []domain.Manifest{
		{Name: "good", Version: "1.0.0", Binary: goodPath, SHA256: goodSum, Enabled: true, Events: []domain.EventKind{domain.EventSessionCompleted}},
		{Name: "disabled", Version: "1.0.0", Binary: goodPath, SHA256: goodSum, Enabled: false, Events: []domain.EventKind{domain.EventSessionCompleted}},
		{Name: "other-event", Version: "1.0.0", Binary: goodPath, SHA256: goodSum, Enabled: true, Events: []domain.EventKind{domain.EventBreakStarted}},
		{Name: "tampered", Version: "1.0.0", Binary: tamperedPath, SHA256: strings.Repeat("00", 32), Enabled: true, Events: []domain.EventKind{domain.EventSessionCompleted}},
	}}
	svc := NewHookService(store, &fakeHost{})

	subscribers, problems := svc.Subscribers(context.Background(), domain.EventSessionCompleted)
	if len(subscribers) != 1 || subscribers[0].Name != "good" {
		t.Fatalf("expected only the good hook, got %+v", subscribers)
	}
	if len(problems) != 1 {
		t.Fatalf("expected one skip reason for the tampered hook, got %v", problems)
	}
}

func TestDoctorReportsBinaryState(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	goodPath, goodSum := writeHookBinary(t, dir, "good")

	store := &fakeManifestStore{manifests: []domain.Manifest{
		{Name: "good", Version: "1.0.0", Binary: goodPath, SHA256: goodSum, Enabled: true, Events: []domain.EventKind{domain.EventBreakEnded}},
		{Name: "ghost", Version: "1.0.0", Binary: filepath.Join(dir, "missing"), SHA256: goodSum, Enabled: true, Events: []domain.EventKind{domain.EventBreakEnded}},
	}}
	svc := NewHookService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].BinaryReachable || !results[0].ChecksumValid || !results[0].LifecycleOK {
		t.Fatalf("healthy hook flagged: %+v", results[0])
	}
	if results[1].BinaryReachable || results[1].Error == "" {
		t.Fatalf("missing binary not flagged: %+v", results[1])
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path, sum := writeHookBinary(t, dir, "dup")
	manifest := domain.Manifest{Name: "dup", Version: "1.0.0", Binary: path, SHA256: sum, Enabled: true, Events: []domain.EventKind{domain.EventBreakEnded}}
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest, manifest}}
	svc := NewHookService(store, &fakeHost{})

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected duplicate name error")
	}
}
