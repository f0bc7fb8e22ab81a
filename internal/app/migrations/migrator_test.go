package migrations

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestVersion(t *testing.T) {
	tests := map[string]string{
		"001_init.sql":           "001",
		"sql/002_add_index.sql":  "002",
		"010_payment_status.sql": "010",
	}
	for name, want := range tests {
		if got := Version(name); got != want {
			t.Errorf("Version(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSQLFilesSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.sql":     {Data: []byte("SELECT 2;")},
		"001_a.sql":     {Data: []byte("SELECT 1;")},
		"README.md":     {Data: []byte("notes")},
		"old/003_c.sql": {Data: []byte("SELECT 3;")},
	}
	files, err := SQLFiles(fsys)
	if err != nil {
		t.Fatalf("SQLFiles failed: %v", err)
	}
	if strings.Join(files, ",") != "001_a.sql,002_b.sql" {
		t.Fatalf("unexpected files %v", files)
	}
}

func TestEmbeddedSchema(t *testing.T) {
	files, err := SQLFiles(Files())
	if err != nil {
		t.Fatalf("SQLFiles failed: %v", err)
	}
	if len(files) == 0 || files[0] != "001_init.sql" {
		t.Fatalf("expected 001_init.sql first, got %v", files)
	}
	body, err := fs.ReadFile(Files(), files[0])
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	for _, table := range []string{"organizations", "colleges", "courses", "users", "officers", "students", "fee_types", "payment_requests"} {
		if !strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("schema missing table %s", table)
		}
	}
}
