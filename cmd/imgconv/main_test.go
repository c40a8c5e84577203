package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fumiama/imgconv"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	if err := imgconv.Save(in, imgconv.NewImage(3, 2, imgconv.Color{R: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.bmp")
	if err := os.WriteFile(bad, []byte("BM not really"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"ok", []string{in, filepath.Join(dir, "out.ppm")}, exitOK, "Successfully converted"},
		{"no args", nil, exitUsage, "Usage"},
		{"one arg", []string{in}, exitUsage, "Usage"},
		{"three args", []string{in, in, in}, exitUsage, "Usage"},
		{"bad flag", []string{"-nope", in, in}, exitUsage, ""},
		{"unknown input", []string{filepath.Join(dir, "a.gif"), filepath.Join(dir, "b.bmp")}, exitUnknownInput, "Unknown format of the input file"},
		{"unknown output", []string{in, filepath.Join(dir, "b.BMP")}, exitUnknownOutput, "Unknown format of the output file"},
		{"load", []string{bad, filepath.Join(dir, "b.ppm")}, exitLoad, "Loading failed"},
		{"save", []string{in, filepath.Join(dir, "none", "b.ppm")}, exitSave, "Saving failed"},
		{"quality", []string{"-quality", "101", in, filepath.Join(dir, "b.jpg")}, exitUsage, "out of range"},
	} {
		var stdout, stderr bytes.Buffer
		code := run(tc.args, &stdout, &stderr)
		if code != tc.code {
			t.Errorf("%s: exit %d, want %d (stderr %q)", tc.name, code, tc.code, stderr.String())
		}
		if !strings.Contains(stdout.String()+stderr.String(), tc.msg) {
			t.Errorf("%s: output %q lacks %q", tc.name, stdout.String()+stderr.String(), tc.msg)
		}
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ppm")
	if err := imgconv.Save(in, imgconv.NewImage(8, 8, imgconv.Black())); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "imgconv.yml")
	if err := os.WriteFile(cfg, []byte("jpeg_quality: 50\nverbose: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", cfg, in, filepath.Join(dir, "out.jpg")}, &stdout, &stderr); code != exitOK {
		t.Fatal(code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "imgconv: loaded") {
		t.Fatalf("%q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-config", cfg, "-v=false", in, filepath.Join(dir, "out2.jpg")}, &stdout, &stderr); code != exitOK {
		t.Fatal(code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("%q", stderr.String())
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("jpeg_qualty: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"-config", bad, in, filepath.Join(dir, "out3.jpg")}, &stdout, &stderr); code != exitUsage {
		t.Fatal(code)
	}
	if code := run([]string{"-config", filepath.Join(dir, "missing.yml"), in, filepath.Join(dir, "out4.jpg")}, &stdout, &stderr); code != exitUsage {
		t.Fatal(code)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || cfg != (config{}) {
		t.Fatal(cfg, err)
	}
	if err := (config{JPEGQuality: -1}).validate(); err == nil {
		t.Fatal("negative quality accepted")
	}
	if err := (config{JPEGQuality: 100}).validate(); err != nil {
		t.Fatal(err)
	}
}
