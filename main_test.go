package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	out, err := run(t, "layout")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Minimap (minimap_v1.2): 14 channels",
		"Screen (screen_v1.2): 16 channels", "unit_type / 1850"} {
		if !strings.Contains(out, want) {
			t.Errorf("layout: output missing %q", want)
		}
	}
}

func TestLayoutCommandTables(t *testing.T) {
	out, err := run(t, "layout",
		"--minimap-table", "features/testdata/minimap_v1.2.yaml",
		"--screen-table", "features/testdata/screen_v1.2.toml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "16 channels") {
		t.Error("layout: output missing screen channel count")
	}

	if _, err := run(t, "layout", "--minimap-table",
		"features/testdata/bad_scale.yaml"); err == nil {
		t.Error("layout: expected error for invalid table")
	}
}

func TestEncodeCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "encode", "-n", "3", "--minimap-size", "4",
		"--screen-size", "6", "-a", "20", "--png", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Minimaps: (3, 14, 4, 4)") {
		t.Errorf("encode: unexpected batch shapes in output\n%v", out)
	}
	for _, name := range []string{"minimap.png", "screen.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("encode: %v", err)
		}
	}

	if _, err := run(t, "encode", "-n", "0"); err == nil {
		t.Error("encode: expected error for empty batch")
	}
}

func TestEncodeCommandInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obs.json")
	minimap := "[" + strings.Repeat("[[0]],", 6) + "[[1]]]"
	screen := "[" + strings.Repeat("[[0]],", 16) + "[[1]]]"
	obs := `{"minimap": ` + minimap + `, "screen": ` + screen +
		`, "available_actions": [0, 2]}`
	if err := os.WriteFile(path, []byte(obs), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "encode", "-i", path, "-a", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Infos: (1, 3)") {
		t.Errorf("encode: unexpected batch shapes in output\n%v", out)
	}

	_, err = run(t, "encode", "-i", path, "-a", "2")
	if err == nil {
		t.Fatal("encode: expected error for action out of range")
	}
	if !strings.HasPrefix(err.Error(), "observation 0: ") {
		t.Errorf("encode: error does not name the observation\n\thave(%v)",
			err)
	}
}
