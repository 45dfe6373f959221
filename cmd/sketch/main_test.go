package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunReplaysScript(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "sketch.yaml", "width: 120\nheight: 80\nstorage: file\ndsn: "+filepath.Join(dir, "pages.json")+"\n")
	script := writeTemp(t, dir, "actions.yaml", `
steps:
  - action: set-settings
    settings: {width: 6}
  - action: stroke
    points: [[10, 40], [110, 40]]
  - action: save-page
    name: line
  - action: delete-page
    index: 0
`)
	out := filepath.Join(dir, "page.png")

	var stdout, stderr bytes.Buffer
	args := []string{"-config", cfg, "-script", script, "-out", out}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stderr.String(), "sole-page") {
		t.Errorf("refused delete not reported: %q", stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("output size = %v", b)
	}
	if r, _, _, _ := img.At(60, 40).RGBA(); r > 0x0800 {
		t.Errorf("stroke missing from output: r = %#x", r)
	}

	stdout.Reset()
	if err := run(context.Background(), []string{"-config", cfg, "-list"}, &stdout, &stderr); err != nil {
		t.Fatalf("run(-list) error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "line" {
		t.Errorf("-list = %q, want line", got)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	ctx := context.Background()

	if err := run(ctx, []string{"-bogus"}, &stdout, &stderr); err == nil {
		t.Error("unknown flag should fail")
	}
	missing := filepath.Join(dir, "missing.yaml")
	if err := run(ctx, []string{"-script", missing, "-out", filepath.Join(dir, "x.png")}, &stdout, &stderr); err == nil {
		t.Error("missing script should fail")
	}
	bad := writeTemp(t, dir, "bad.yaml", "steps: [{action: fly}]")
	if err := run(ctx, []string{"-script", bad, "-out", filepath.Join(dir, "x.png")}, &stdout, &stderr); err == nil || !strings.Contains(err.Error(), "step 1") {
		t.Errorf("bad step error = %v", err)
	}
}
