// Package docs holds the embedded help topics behind `todoadmin docs`.
package docs

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

// List returns every available topic name, sorted.
func List() []string {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "" && name != e.Name() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Topic returns the markdown source of one topic. The lookup is
// case-insensitive; unknown topics report false.
func Topic(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	b, err := contentFS.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}
