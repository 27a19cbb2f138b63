package skeleton

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestGenerateTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "sub", "b.txt"))
	writeFile(t, filepath.Join(root, "sub", "c.txt"))
	writeFile(t, filepath.Join(root, ".git", "config"))

	got, err := Generate(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Base(root) + "/\n" +
		"├── a.txt\n" +
		"└── sub/\n" +
		"    ├── b.txt\n" +
		"    └── c.txt\n"
	if got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, ".git") {
		t.Fatalf(".git should be excluded:\n%s", got)
	}
}

func TestGenerateNestedSiblingMarkers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x", "deep", "one.txt"))
	writeFile(t, filepath.Join(root, "x", "two.txt"))
	writeFile(t, filepath.Join(root, "z.txt"))

	got, err := Generate(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// x/ has a following sibling (z.txt), so its subtree is drawn with the
	// continuation bar; deep/ is not the last entry inside x/.
	want := filepath.Base(root) + "/\n" +
		"├── x/\n" +
		"│   ├── deep/\n" +
		"│   │   └── one.txt\n" +
		"│   └── two.txt\n" +
		"└── z.txt\n"
	if got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateEmptyRoot(t *testing.T) {
	root := t.TempDir()
	got, err := Generate(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Base(root)+"/\n" {
		t.Fatalf("expected bare root line, got %q", got)
	}
}
