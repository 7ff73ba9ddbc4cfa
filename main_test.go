package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func writeTestFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleSource = `/// A registered user.
#[typeshare]
#[serde(rename_all = "camelCase")]
pub struct User {
    user_name: String,
    roles: Vec<Role>,
}

#[typeshare]
pub enum Role {
    Admin,
    Member,
}

pub struct Internal {
    secret: String,
}
`

func createSample(t *testing.T) string {
	t.Helper()
	return writeTestFile(t, t.TempDir(), "user.rs", sampleSource)
}

func TestRunDiag(t *testing.T) {
	t.Parallel()
	path := createSample(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-l", "diag", path}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	want := "BEGIN STRUCT:User\n" +
		"FIELD:userName\n" +
		"SEQ FIELD:roles\n" +
		"END STRUCT:User\n" +
		"BEGIN STRUCT:Internal\n" +
		"FIELD:secret\n" +
		"END STRUCT:Internal\n" +
		"BEGIN ENUM:Role\n" +
		"CASE:Admin=\n" +
		"CASE:Member=\n" +
		"END ENUM:Role\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunUseMarker(t *testing.T) {
	t.Parallel()
	path := createSample(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--use-marker", "--lang=diag", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(stdout.String(), "Internal") {
		t.Error("unmarked struct should be skipped")
	}
}

func TestRunTypeScript(t *testing.T) {
	t.Parallel()
	path := createSample(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{path, "-l", "ts"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"// Generated by typeshare dev\n",
		"// A registered user.\nexport interface User {\n",
		"\tuserName: string;\n",
		"\troles: Role[];\n",
		"export enum Role {\n\tAdmin = \"Admin\",\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSwiftPrefix(t *testing.T) {
	t.Parallel()
	path := createSample(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--swift-prefix", "App", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "public struct AppUser: Codable {") {
		t.Errorf("missing prefixed struct:\n%s", out)
	}
	if !strings.Contains(out, "public let roles: [AppRole]") {
		t.Errorf("missing prefixed reference:\n%s", out)
	}
}

func TestRunJavaOption(t *testing.T) {
	t.Parallel()
	path := createSample(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-l", "java", "-o", "package=com.acme", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "package com.acme;\n") {
		t.Errorf("missing package line:\n%s", stdout.String())
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-V"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "typeshare dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRunExitCodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeTestFile(t, dir, "good.rs", sampleSource)
	bad := writeTestFile(t, dir, "bad.rs", "pub enum Shape {\n    Circle { radius: f64 },\n}\n")
	broken := writeTestFile(t, dir, "broken.rs", "pub struct {\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown backend", []string{"-l", "cobol", good}, exitUsage},
		{"unknown flag", []string{"--bogus", good}, exitUsage},
		{"no input", nil, exitUsage},
		{"too many inputs", []string{good, bad}, exitUsage},
		{"directory without out-dir", []string{dir}, exitUsage},
		{"missing config", []string{"--config", filepath.Join(dir, "none.toml"), good}, exitUsage},
		{"invalid enum", []string{bad}, exitFailure},
		{"syntax error", []string{broken}, exitFailure},
		{"missing file", []string{filepath.Join(dir, "missing.rs")}, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil {
				t.Fatalf("expected error, stdout:\n%s", stdout.String())
			}
			if got := exitCode(err); got != tt.want {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.want, err)
			}
			if stdout.Len() != 0 {
				t.Errorf("no output expected on failure, got:\n%s", stdout.String())
			}
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTestFile(t, dir, "user.rs", sampleSource)
	cfg := writeTestFile(t, dir, "custom.toml", "lang = \"diag\"\nuse-marker = true\n")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--config", cfg, path}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "BEGIN STRUCT:User\n") || strings.Contains(out, "Internal") {
		t.Errorf("config file not applied:\n%s", out)
	}

	// Flags win over the file.
	stdout.Reset()
	if err := run([]string{"--config", cfg, "-l", "ts", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "export interface User") {
		t.Errorf("flag did not override config:\n%s", stdout.String())
	}
}

func TestRunOutDirSingleFile(t *testing.T) {
	t.Parallel()
	path := createSample(t)
	out := filepath.Join(t.TempDir(), "gen")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-l", "ts", "--out-dir", out, path}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty with --out-dir, got:\n%s", stdout.String())
	}
	data, err := os.ReadFile(filepath.Join(out, "user.ts"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "export interface User") {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestRunBatch(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTestFile(t, root, "src/user.rs", sampleSource)
	writeTestFile(t, root, "src/shape.rs", "pub enum Shape {\n    Circle { radius: f64 },\n}\n")
	writeTestFile(t, root, "tests/fixtures.rs", "pub struct Fixture { a: i32 }\n")
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-l", "swift", "--out-dir", out, root}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected failure for invalid enum")
	}
	if got := exitCode(err); got != exitFailure {
		t.Errorf("exit code = %d, want %d", got, exitFailure)
	}
	if !strings.Contains(err.Error(), "1 of 2 files failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr.String(), "generation failed") {
		t.Errorf("failure should be logged:\n%s", stderr.String())
	}

	if _, err := os.Stat(filepath.Join(out, "src", "user.swift")); err != nil {
		t.Errorf("user.swift not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "src", "shape.swift")); err == nil {
		t.Error("shape.swift should not be written")
	}
	if _, err := os.Stat(filepath.Join(out, "tests")); err == nil {
		t.Error("test sources should be skipped")
	}
}

func TestPrintErrorHints(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := usageError(errors.WithHint(errors.New("no input given"), "pass a Rust file"))
	printError(&buf, err)

	want := "error: no input given\nhint: pass a Rust file\n"
	if got := buf.String(); got != want {
		t.Errorf("printError = %q, want %q", got, want)
	}
}

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	cases := []struct {
		err  *ExitError
		want string
	}{
		{&ExitError{Code: 1, Message: "2 of 3 files failed"}, "2 of 3 files failed"},
		{&ExitError{Code: 1, Err: cause}, "boom"},
		{&ExitError{Code: 2, Message: "config", Err: cause}, "config: boom"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
		if !errors.Is(tc.err, cause) && tc.err.Err != nil {
			t.Errorf("%v should unwrap to cause", tc.err)
		}
	}
	if got := exitCode(cause); got != exitFailure {
		t.Errorf("plain error exit code = %d, want %d", got, exitFailure)
	}
}
