package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDemoExitsZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"demo"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "asset ledger: supply=90 last_transfer=50") {
		t.Errorf("unexpected demo output: %s", out.String())
	}
	if !strings.Contains(out.String(), "committed height 1") {
		t.Errorf("expected committed height 1 in demo output: %s", out.String())
	}
}

func TestRunParseValidFile(t *testing.T) {
	path := writeTempScript(t, demoVenueScript)

	var out, errOut bytes.Buffer
	code := run([]string{"parse", path}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "ok:") {
		t.Errorf("unexpected parse output: %s", out.String())
	}
}

func TestRunParseInvalidFileReturnsNonZero(t *testing.T) {
	path := writeTempScript(t, "ROUTER {\n}\n")

	var out, errOut bytes.Buffer
	code := run([]string{"parse", path}, &out, &errOut)
	if code == 0 {
		t.Fatalf("expected non-zero exit code for invalid script")
	}
	if errOut.Len() == 0 {
		t.Errorf("expected an error message on stderr")
	}
}

func TestRunManifestPrintsValidJSON(t *testing.T) {
	path := writeTempScript(t, demoVenueScript)

	var out, errOut bytes.Buffer
	code := run([]string{"manifest", path}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("manifest output is not valid JSON: %v", err)
	}
	if _, ok := decoded["router"]; !ok {
		t.Errorf("manifest missing router key: %v", decoded)
	}
}

func TestRunMissingFileReturnsNonZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"parse", filepath.Join(t.TempDir(), "missing.venue")}, &out, &errOut)
	if code == 0 {
		t.Fatalf("expected non-zero exit code for missing file")
	}
}

func writeTempScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.venue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error writing temp script: %v", err)
	}
	return path
}
