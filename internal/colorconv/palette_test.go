package colorconv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]byte(`{"anchors":[{"name":"red","rgb":[255,0,0]},{"name":"blue","rgb":[0,0,255]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Steps != 4 {
		t.Errorf("steps = %d, want default 4", p.Steps)
	}
	if got := p.Colors(); len(got) != 2 || got[1] != RGB(0, 0, 255) {
		t.Errorf("colors = %v", got)
	}
}

func TestParsePaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"one anchor", `{"anchors":[{"name":"red","rgb":[255,0,0]}]}`, ErrTooFewAnchors},
		{"negative steps", `{"anchors":[{"rgb":[1,1,1]},{"rgb":[2,2,2]}],"steps":-1}`, ErrBadSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePalette([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := ParsePalette([]byte(`{"anchors":[],"colour":1}`)); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestLoadPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	data := `{"anchors":[{"name":"a","rgb":[1,2,3]},{"name":"b","rgb":[4,5,6]},{"name":"c","rgb":[7,8,9]}],"steps":2}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPalette(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Anchors) != 3 || p.Steps != 2 {
		t.Errorf("palette = %+v", p)
	}
	if _, err := LoadPalette(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p.Anchors) != 5 || p.Steps != 4 {
		t.Fatalf("default palette = %+v", p)
	}
	if p.Anchors[4].Color() != RGB(117, 0, 210) {
		t.Errorf("grape jelly = %v", p.Anchors[4].Color())
	}
}
