package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestKitFileName_FlattensUnsafeCharacters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"API zym", "api_zym"},
		{"API 20E", "api_20e"},
		{"API 50CHac/E", "api_50chac_e"},
		{"API coryne", "api_coryne"},
	}
	for _, tc := range cases {
		if got := kitFileName(tc.in); got != tc.want {
			t.Errorf("kitFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteJSON_CompactAndPretty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	v := map[string]int{"total_strains": 3}

	compact := filepath.Join(dir, "compact.json")
	if err := writeJSON(compact, v, false); err != nil {
		t.Fatalf("writeJSON compact: %v", err)
	}
	pretty := filepath.Join(dir, "pretty.json")
	if err := writeJSON(pretty, v, true); err != nil {
		t.Fatalf("writeJSON pretty: %v", err)
	}

	cData, err := os.ReadFile(compact)
	if err != nil {
		t.Fatalf("read compact: %v", err)
	}
	pData, err := os.ReadFile(pretty)
	if err != nil {
		t.Fatalf("read pretty: %v", err)
	}
	if len(pData) <= len(cData) {
		t.Errorf("pretty output (%d bytes) should be larger than compact (%d bytes)", len(pData), len(cData))
	}

	var got map[string]int
	if err := json.Unmarshal(pData, &got); err != nil {
		t.Fatalf("unmarshal pretty: %v", err)
	}
	if got["total_strains"] != 3 {
		t.Errorf("total_strains = %d, want 3", got["total_strains"])
	}
}

func TestWriteJSON_ErrorOnBadPath(t *testing.T) {
	t.Parallel()

	err := writeJSON(filepath.Join(t.TempDir(), "missing", "out.json"), 1, false)
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
