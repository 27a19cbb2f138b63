// Package skeleton renders a project's file tree as indented text, suitable
// for pasting into an agent prompt as a map of the codebase.
package skeleton

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Generate returns a tree-style listing of root. Files ignored by git are
// excluded when a git work tree is available; otherwise the walk skips only
// the .git directory itself.
func Generate(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	rootName := filepath.Base(absRoot)

	paths, err := gitFiles(absRoot)
	if err != nil {
		paths, err = walkFiles(absRoot)
		if err != nil {
			return "", err
		}
	}

	tree := newNode()
	for _, p := range paths {
		tree.insert(strings.Split(filepath.ToSlash(p), "/"))
	}

	var b strings.Builder
	b.WriteString(rootName + "/\n")
	tree.render(&b, "")
	return b.String(), nil
}

// gitFiles lists tracked plus untracked-but-not-ignored files.
func gitFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "-C", root, "ls-files", "--cached", "--others", "--exclude-standard")
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

func walkFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	return paths, err
}

// node is one directory level. Files are leaves; directories carry children.
type node struct {
	children map[string]*node
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

func (n *node) insert(parts []string) {
	if len(parts) == 0 || parts[0] == "" {
		return
	}
	child, ok := n.children[parts[0]]
	if !ok {
		child = newNode()
		n.children[parts[0]] = child
	}
	child.insert(parts[1:])
}

func (n *node) render(b *strings.Builder, prefix string) {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		child := n.children[name]
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(names)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		suffix := ""
		if len(child.children) > 0 {
			suffix = "/"
		}
		fmt.Fprintf(b, "%s%s%s%s\n", prefix, connector, name, suffix)
		child.render(b, childPrefix)
	}
}
