package vault

import (
	"context"

	"github.com/vkarev/arpub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// DocumentHost is the capability interface for reading notes and their
// attachments. The exporter depends on it instead of a concrete vault so the
// hosting environment can be swapped (filesystem vault in production, a fake
// in tests). No method mutates the vault.
type DocumentHost interface {
	// ActiveNote returns the note the user is currently working with.
	// When there is no active note it returns [ErrNoActiveNote]; callers
	// surface that as a notice and abort the workflow without treating it
	// as a failure.
	ActiveNote(ctx context.Context) (models.Note, error)

	// EmbeddedAttachments returns the image attachments referenced by the
	// note's embed links, resolved to on-disk files. Embed links that do
	// not resolve to an existing file are skipped.
	EmbeddedAttachments(ctx context.Context, note models.Note) ([]models.Attachment, error)

	// ReadBinary reads the raw content of a resolved attachment.
	ReadBinary(ctx context.Context, att models.Attachment) ([]byte, error)
}
