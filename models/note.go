package models

import (
	"path/filepath"
	"strings"
)

// Note is the currently active markdown document read from the vault.
// It is ephemeral: held in memory only for the duration of one
// export/publish cycle and never written back.
type Note struct {
	// Path is the note location on disk, relative to the vault root or
	// absolute depending on how the vault was configured.
	Path string

	// Content is the raw markdown text of the note.
	Content string
}

// BaseName returns the note's file name without directory or the .md
// extension. It is used as the <title> of the exported HTML document.
func (n Note) BaseName() string {
	base := filepath.Base(n.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Attachment is a note-to-file link pointing at an image asset inside the
// vault. It is resolved to binary content during export and re-encoded as a
// data URI; nothing about it is persisted.
type Attachment struct {
	// Name is the file name exactly as it appears inside the embed link,
	// e.g. "diagram.png".
	Name string

	// Path is the resolved on-disk location of the attachment.
	Path string
}

// Ext returns the attachment's lower-cased file extension without the dot
// ("png", "jpeg", ...). Used for the extension→MIME lookup.
func (a Attachment) Ext() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(a.Name), "."))
}
