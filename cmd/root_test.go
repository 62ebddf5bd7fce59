package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matheuskafuri/folio/internal/content"
)

// execute runs the root command with args against a throwaway config that
// keeps logging off.
const quietConfig = "log:\n  level: info\n  file: \"off\"\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeWithConfig(t, quietConfig, args...)
}

func executeWithConfig(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	flagConfig, flagContent, flagSection, flagTheme, flagDebug = "", "", "", "", false
	flagStartID = 1

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "folio dev") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestStatsBuiltIn(t *testing.T) {
	out, _, err := execute(t, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{
		"Content: (built-in)",
		"Articles: 5",
		"Notes: 4",
		"Photos: 6 (2 galleries)",
		"Podcasts: 6",
		"Categories: 6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsWithContentFlag(t *testing.T) {
	dir := writeContent(t, map[string]string{
		"notes.yaml": "notes:\n  - {id: 1, content: hi, tags: [a], date: 2024-01-01}\n",
	})
	out, _, err := execute(t, "stats", "--content", dir)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Notes: 1") || !strings.Contains(out, "Articles: 0") {
		t.Errorf("unexpected stats output:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	good := writeContent(t, map[string]string{
		"a.yaml":       "notes:\n  - {id: 1, content: hi, date: 2024-01-01}\n",
		"more/b.yml":   "notes:\n  - {id: 2, content: there, date: 2024-01-02}\n",
		"ignored.json": "{}",
	})
	dup := writeContent(t, map[string]string{
		"a.yaml": "notes:\n  - {id: 1, content: hi, date: 2024-01-01}\n  - {id: 1, content: again, date: 2024-01-01}\n",
	})
	dangling := writeContent(t, map[string]string{
		"photos.yaml": "photos:\n  - {id: 1, title: x, url: 'https://example.com/x.jpg', date: 2024-01-01, gallery: {id: 9, count: 2}}\n",
	})

	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr string
	}{
		{"built-in", []string{"check"}, "OK: built-in content", ""},
		{"directory", []string{"check", good}, "OK: 2 file(s)", ""},
		{"duplicate", []string{"check", dup}, "", "duplicate id"},
		{"dangling", []string{"check", dangling}, "", "galleries that do not exist"},
		{"missing", []string{"check", filepath.Join(good, "nope")}, "", "reading content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output %q does not contain %q", out, tt.wantOut)
			}
		})
	}
}

func TestCheckUsesConfiguredContent(t *testing.T) {
	dup := writeContent(t, map[string]string{
		"a.yaml": "notes:\n  - {id: 1, content: hi, date: 2024-01-01}\n  - {id: 1, content: again, date: 2024-01-01}\n",
	})
	good := writeContent(t, map[string]string{
		"a.yaml": "notes:\n  - {id: 1, content: hi, date: 2024-01-01}\n",
	})

	_, _, err := executeWithConfig(t, quietConfig+"content: "+dup+"\n", "check")
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error from configured content, got %v", err)
	}

	out, _, err := executeWithConfig(t, quietConfig+"content: "+good+"\n", "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "OK: 1 file(s)") {
		t.Errorf("output %q does not report the configured file", out)
	}

	out, _, err = executeWithConfig(t, quietConfig+"content: "+dup+"\n", "--content", good, "check")
	if err != nil {
		t.Fatalf("--content should override the config: %v", err)
	}
	if !strings.Contains(out, "OK: 1 file(s)") {
		t.Errorf("output %q does not report the overriding file", out)
	}
}

func TestImport(t *testing.T) {
	fixture := filepath.Join("..", "internal", "feed", "testdata", "show.xml")
	out, _, err := execute(t, "import", "--start-id", "7", fixture)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	store, err := content.Parse([]byte(out))
	if err != nil {
		t.Fatalf("import output does not load: %v\n%s", err, out)
	}
	eps := store.Podcasts()
	if len(eps) != 2 || eps[0].ID != 7 || eps[1].ID != 8 {
		t.Errorf("unexpected episodes: %+v", eps)
	}
}

func TestImportRejectsBadStartID(t *testing.T) {
	_, _, err := execute(t, "import", "--start-id", "0", "feed.xml")
	if err == nil || !strings.Contains(err.Error(), "--start-id") {
		t.Errorf("expected --start-id error, got %v", err)
	}
}

func TestImportReportsUnreadableFeeds(t *testing.T) {
	_, errOut, err := execute(t, "import", filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Fatal("expected error when nothing was imported")
	}
	if !strings.Contains(errOut, "[warn]") {
		t.Errorf("expected a warning on stderr, got %q", errOut)
	}
}

func TestBrowseRejectsUnknownSection(t *testing.T) {
	if _, _, err := execute(t, "browse", "videos"); err == nil {
		t.Error("expected error for unknown section")
	}
	if _, _, err := execute(t, "browse"); err == nil {
		t.Error("expected error without a section")
	}
}

func TestRootRejectsUnknownSectionFlag(t *testing.T) {
	_, _, err := execute(t, "--section", "videos")
	if err == nil || !strings.Contains(err.Error(), "unknown section") {
		t.Errorf("expected unknown section error, got %v", err)
	}
}

func TestRootRejectsUnknownTheme(t *testing.T) {
	_, _, err := execute(t, "--theme", "neon")
	if err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Errorf("expected unknown theme error, got %v", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
