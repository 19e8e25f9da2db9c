package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/htmlindex"
)

// WriteFile writes data to dir/name, creating dir when needed, and returns
// the full path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteText writes text as UTF-8.
func WriteText(t testing.TB, dir, name, text string) string {
	t.Helper()
	return WriteFile(t, dir, name, []byte(text))
}

// WriteEncoded writes text transcoded to the named WHATWG encoding.
func WriteEncoded(t testing.TB, dir, name, text, encoding string) string {
	t.Helper()

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		t.Fatalf("lookup encoding %q: %v", encoding, err)
	}
	data, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode %s as %s: %v", name, encoding, err)
	}
	return WriteFile(t, dir, name, data)
}
