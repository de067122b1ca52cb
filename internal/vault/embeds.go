package vault

import (
	"path/filepath"
	"regexp"
	"strings"
)

// embedLinkPattern matches wiki-style embed links: ![[name.png]] or
// ![[name.png|300]] (the part after | is display sizing and is ignored).
var embedLinkPattern = regexp.MustCompile(`!\[\[([^\[\]|]+)(?:\|[^\[\]]*)?\]\]`)

// imageExtensions is the set of attachment extensions the exporter inlines.
var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"bmp":  {},
	"svg":  {},
}

// embeddedImageNames extracts the file names of all image embed links in the
// note content, in order of first appearance, without duplicates.
func embeddedImageNames(content string) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, match := range embedLinkPattern.FindAllStringSubmatch(content, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}
		if !isImageName(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

func isImageName(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := imageExtensions[ext]
	return ok
}
