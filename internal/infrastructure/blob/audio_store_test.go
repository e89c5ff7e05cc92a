package blob

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndServeURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAudioStore(dir)
	if err != nil {
		t.Fatalf("NewAudioStore failed: %v", err)
	}

	tests := []struct {
		name    string
		ext     string
		wantExt string
	}{
		{name: "webm extension", ext: ".webm", wantExt: ".webm"},
		{name: "uppercase normalized", ext: ".WAV", wantExt: ".wav"},
		{name: "missing extension defaults", ext: "", wantExt: ".webm"},
		{name: "bare extension without dot", ext: "mp3", wantExt: ".mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := store.Save([]byte("clip bytes"), tt.ext)
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			if !strings.HasPrefix(url, URLPrefix+"/audio_") {
				t.Errorf("unexpected URL: %q", url)
			}
			if !strings.HasSuffix(url, tt.wantExt) {
				t.Errorf("expected extension %q in URL %q", tt.wantExt, url)
			}

			name := strings.TrimPrefix(url, URLPrefix+"/")
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("stored file unreadable: %v", err)
			}
			if string(data) != "clip bytes" {
				t.Errorf("stored bytes mismatch: %q", data)
			}
		})
	}
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	store, err := NewAudioStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewAudioStore failed: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		url, err := store.Save([]byte("x"), ".webm")
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if seen[url] {
			t.Fatalf("duplicate clip URL: %q", url)
		}
		seen[url] = true
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAudioStore(dir)
	if err != nil {
		t.Fatalf("NewAudioStore failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := store.Save([]byte("x"), ".webm"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty directory after clear, found %d entries", len(entries))
	}

	// Clearing an empty store is not an error
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}
