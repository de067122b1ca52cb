package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/models"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func newTestVault(t *testing.T, cfg config.Vault) DocumentHost {
	t.Helper()
	v, err := NewFSVault(cfg, logger.Nop())
	require.NoError(t, err)
	return v
}

// ── ActiveNote ───────────────────────────────────────────────────────────────

func TestActiveNote_EmptyPath(t *testing.T) {
	v := newTestVault(t, config.Vault{Dir: t.TempDir()})

	_, err := v.ActiveNote(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveNote)
}

func TestActiveNote_MissingFile(t *testing.T) {
	v := newTestVault(t, config.Vault{Dir: t.TempDir(), Note: "ghost.md"})

	_, err := v.ActiveNote(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveNote)
}

func TestActiveNote_ReadsContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "idea.md"), []byte("# Idea\n\nbody"))

	v := newTestVault(t, config.Vault{Dir: dir, Note: "idea.md"})

	note, err := v.ActiveNote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "# Idea\n\nbody", note.Content)
	assert.Equal(t, "idea", note.BaseName())
}

func TestNewFSVault_MissingDir(t *testing.T) {
	_, err := NewFSVault(config.Vault{Dir: "/no/such/vault"}, logger.Nop())
	require.Error(t, err)
}

// ── EmbeddedAttachments ──────────────────────────────────────────────────────

func TestEmbeddedAttachments_ResolvesNextToNote(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.md"), []byte("text ![[diagram.png]] more"))
	writeFile(t, filepath.Join(dir, "diagram.png"), []byte{0x89, 0x50})

	v := newTestVault(t, config.Vault{Dir: dir, Note: "note.md"})
	note, err := v.ActiveNote(context.Background())
	require.NoError(t, err)

	atts, err := v.EmbeddedAttachments(context.Background(), note)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, "diagram.png", atts[0].Name)
	assert.Equal(t, filepath.Join(dir, "diagram.png"), atts[0].Path)
}

func TestEmbeddedAttachments_ResolvesInAttachmentsDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes", "note.md"), []byte("![[pic.jpg|400]]"))
	writeFile(t, filepath.Join(dir, "assets", "pic.jpg"), []byte{0xff, 0xd8})

	v := newTestVault(t, config.Vault{Dir: dir, Note: "notes/note.md", AttachmentsDir: "assets"})
	note, err := v.ActiveNote(context.Background())
	require.NoError(t, err)

	atts, err := v.EmbeddedAttachments(context.Background(), note)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, "pic.jpg", atts[0].Name)
	assert.Equal(t, filepath.Join(dir, "assets", "pic.jpg"), atts[0].Path)
}

func TestEmbeddedAttachments_VaultWideSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.md"), []byte("![[deep.gif]]"))
	writeFile(t, filepath.Join(dir, "some", "nested", "deep.gif"), []byte{0x47})

	v := newTestVault(t, config.Vault{Dir: dir, Note: "note.md"})
	note, err := v.ActiveNote(context.Background())
	require.NoError(t, err)

	atts, err := v.EmbeddedAttachments(context.Background(), note)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, filepath.Join(dir, "some", "nested", "deep.gif"), atts[0].Path)
}

func TestEmbeddedAttachments_SkipsUnresolvable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.md"), []byte("![[missing.png]]"))

	v := newTestVault(t, config.Vault{Dir: dir, Note: "note.md"})
	note, err := v.ActiveNote(context.Background())
	require.NoError(t, err)

	atts, err := v.EmbeddedAttachments(context.Background(), note)
	require.NoError(t, err)
	assert.Empty(t, atts)
}

func TestEmbeddedAttachments_IgnoresNonImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.md"), []byte("![[other.pdf]] ![[plain]]"))
	writeFile(t, filepath.Join(dir, "other.pdf"), []byte("%PDF"))

	v := newTestVault(t, config.Vault{Dir: dir, Note: "note.md"})
	note, err := v.ActiveNote(context.Background())
	require.NoError(t, err)

	atts, err := v.EmbeddedAttachments(context.Background(), note)
	require.NoError(t, err)
	assert.Empty(t, atts)
}

// ── ReadBinary ───────────────────────────────────────────────────────────────

func TestReadBinary(t *testing.T) {
	dir := t.TempDir()
	content := []byte{0x89, 0x50, 0x4e, 0x47}
	writeFile(t, filepath.Join(dir, "img.png"), content)

	v := newTestVault(t, config.Vault{Dir: dir})

	data, err := v.ReadBinary(context.Background(), models.Attachment{Name: "img.png", Path: filepath.Join(dir, "img.png")})
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestReadBinary_Missing(t *testing.T) {
	v := newTestVault(t, config.Vault{Dir: t.TempDir()})

	_, err := v.ReadBinary(context.Background(), models.Attachment{Name: "gone.png", Path: "/no/such/file.png"})
	require.Error(t, err)
}

// ── embeddedImageNames ───────────────────────────────────────────────────────

func TestEmbeddedImageNames_Deduplicates(t *testing.T) {
	content := "![[a.png]] text ![[b.svg|200]] ![[a.png]]"
	names := embeddedImageNames(content)
	assert.Equal(t, []string{"a.png", "b.svg"}, names)
}

func TestEmbeddedImageNames_CaseInsensitiveExtension(t *testing.T) {
	names := embeddedImageNames("![[Photo.JPG]] ![[scan.JPEG]]")
	assert.Equal(t, []string{"Photo.JPG", "scan.JPEG"}, names)
}
