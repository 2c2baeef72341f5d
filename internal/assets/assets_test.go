package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func fullFS(m Manifest) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, path := range m.Textures {
		fsys[path] = &fstest.MapFile{Data: []byte("png")}
	}
	return fsys
}

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest()
	if len(m.Textures) != 13 {
		t.Fatalf("textures = %d, want 13", len(m.Textures))
	}
	for key, want := range map[string]string{"bg": "bg-v1.png", "press": "press.png", "2": "2.png", "2048": "2048.png"} {
		if m.Textures[key] != want {
			t.Fatalf("texture %q = %q, want %q", key, m.Textures[key], want)
		}
	}
}

func TestCheckComplete(t *testing.T) {
	m := DefaultManifest()
	if err := m.Check(fullFS(m)); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestCheckReportsMissing(t *testing.T) {
	m := DefaultManifest()
	fsys := fullFS(m)
	delete(fsys, "press.png")
	delete(fsys, "64.png")

	err := m.Check(fsys)
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("Check err = %v, want ErrMissingAsset", err)
	}
	if !strings.Contains(err.Error(), "press.png") || !strings.Contains(err.Error(), "64.png") {
		t.Fatalf("error does not name missing files: %v", err)
	}
}

func TestCheckRejectsDirectory(t *testing.T) {
	m := Manifest{Textures: map[string]string{"bg": "bg-v1.png"}}
	fsys := fstest.MapFS{"bg-v1.png/inner": &fstest.MapFile{}}
	if err := m.Check(fsys); !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("Check err = %v", err)
	}
}

func TestAvailableMusic(t *testing.T) {
	m := DefaultManifest()
	fsys := fstest.MapFS{"intro.wav": &fstest.MapFile{Data: []byte("RIFF")}}
	got := m.AvailableMusic(fsys)
	if len(got) != 1 || got[TrackIntro] != "intro.wav" {
		t.Fatalf("AvailableMusic = %v", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(dir); err != nil {
		t.Fatalf("Open(%q): %v", dir, err)
	}
	if _, err := Open(filepath.Join(dir, "missing")); !errors.Is(err, ErrAssetsDir) {
		t.Fatalf("missing dir err = %v", err)
	}
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(file); !errors.Is(err, ErrAssetsDir) {
		t.Fatalf("file err = %v", err)
	}
}
