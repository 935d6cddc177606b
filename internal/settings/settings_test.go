package settings

import (
	"context"
	"path/filepath"
	"testing"
)

func TestDataDirXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(dir, AppName); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func TestDataDirHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)
	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(home, ".local", "share", AppName); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func openTemp(t *testing.T) (*Prefs, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", PrefsFile)
	p, err := OpenPrefs(path)
	if err != nil {
		t.Fatalf("OpenPrefs: %v", err)
	}
	return p, path
}

func TestVolumeDefaults(t *testing.T) {
	p, _ := openTemp(t)
	defer p.Close()
	v, err := LoadVolume(context.Background(), p)
	if err != nil {
		t.Fatalf("LoadVolume: %v", err)
	}
	if v != DefaultVolume {
		t.Fatalf("LoadVolume = %+v, want defaults", v)
	}
}

func TestVolumePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	p, path := openTemp(t)
	if err := SaveVolume(ctx, p, Volume{Master: 0.3, Effects: 0.8}); err != nil {
		t.Fatalf("SaveVolume: %v", err)
	}
	// Overwrite to exercise the upsert.
	if err := SaveVolume(ctx, p, Volume{Master: 0.4, Effects: 0.8}); err != nil {
		t.Fatalf("SaveVolume: %v", err)
	}
	p.Close()

	p2, err := OpenPrefs(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p2.Close()
	v, err := LoadVolume(ctx, p2)
	if err != nil {
		t.Fatalf("LoadVolume: %v", err)
	}
	if v.Master != 0.4 || v.Effects != 0.8 {
		t.Fatalf("LoadVolume = %+v, want {0.4 0.8}", v)
	}
}

func TestVolumeClampedOnSave(t *testing.T) {
	ctx := context.Background()
	p, _ := openTemp(t)
	defer p.Close()
	if err := SaveVolume(ctx, p, Volume{Master: 2, Effects: -1}); err != nil {
		t.Fatalf("SaveVolume: %v", err)
	}
	v, _ := LoadVolume(ctx, p)
	if v.Master != 1 || v.Effects != 0 {
		t.Fatalf("LoadVolume = %+v, want {1 0}", v)
	}
}

func TestFloatParseError(t *testing.T) {
	ctx := context.Background()
	p, _ := openTemp(t)
	defer p.Close()
	if _, err := p.db.ExecContext(ctx, `INSERT INTO prefs (key, value) VALUES (?, ?)`, KeyMasterVolume, "loud"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	v, err := LoadVolume(ctx, p)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if v.Master != 1 {
		t.Fatalf("unreadable key should fall back to default, got %v", v.Master)
	}
}
