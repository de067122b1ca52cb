package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/models"
)

// fsVault is the filesystem implementation of [DocumentHost]. It treats a
// directory of markdown files as the vault and the configured note path as
// the active document.
type fsVault struct {
	dir            string
	notePath       string
	attachmentsDir string

	logger *logger.Logger
}

// NewFSVault constructs a filesystem-backed [DocumentHost] from the vault
// configuration. The vault directory must exist; the note path may be empty
// (no active note).
func NewFSVault(cfg config.Vault, log *logger.Logger) (DocumentHost, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("vault dir %q: %w", cfg.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault dir %q is not a directory", cfg.Dir)
	}

	return &fsVault{
		dir:            cfg.Dir,
		notePath:       cfg.Note,
		attachmentsDir: cfg.AttachmentsDir,
		logger:         log,
	}, nil
}

// ActiveNote implements [DocumentHost]. The active note is the configured
// note path resolved against the vault root. An empty path or a missing file
// yields [ErrNoActiveNote].
func (v *fsVault) ActiveNote(_ context.Context) (models.Note, error) {
	if v.notePath == "" {
		return models.Note{}, ErrNoActiveNote
	}

	path := v.notePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.dir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			v.logger.Debug().Str("note", path).Msg("active note does not exist")
			return models.Note{}, ErrNoActiveNote
		}
		return models.Note{}, fmt.Errorf("read note %q: %w", path, err)
	}

	return models.Note{Path: path, Content: string(data)}, nil
}

// EmbeddedAttachments implements [DocumentHost]. It scans the note content
// for image embed links and resolves each name to a file, checking the note's
// own directory first, then the configured attachments directory, then the
// whole vault by file name. Unresolvable links are skipped with a log entry;
// they stay as literal embed text in the exported document.
func (v *fsVault) EmbeddedAttachments(_ context.Context, note models.Note) ([]models.Attachment, error) {
	var attachments []models.Attachment

	for _, name := range embeddedImageNames(note.Content) {
		path, found := v.resolve(name, filepath.Dir(note.Path))
		if !found {
			v.logger.Warn().Str("embed", name).Msg("embed link does not resolve to a file")
			continue
		}
		attachments = append(attachments, models.Attachment{Name: name, Path: path})
	}

	return attachments, nil
}

// ReadBinary implements [DocumentHost].
func (v *fsVault) ReadBinary(_ context.Context, att models.Attachment) ([]byte, error) {
	data, err := os.ReadFile(att.Path)
	if err != nil {
		return nil, fmt.Errorf("read attachment %q: %w", att.Name, err)
	}
	return data, nil
}

func (v *fsVault) resolve(name, noteDir string) (string, bool) {
	candidates := []string{
		filepath.Join(noteDir, name),
	}
	if v.attachmentsDir != "" {
		candidates = append(candidates, filepath.Join(v.dir, v.attachmentsDir, name))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	return v.search(name)
}

// search walks the vault looking for the first regular file whose base name
// matches. First match wins, mirroring shortest-path embed resolution.
func (v *fsVault) search(name string) (string, bool) {
	var found string

	err := filepath.WalkDir(v.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Base(path) == name {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil || found == "" {
		return "", false
	}

	return found, true
}
