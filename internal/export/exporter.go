// Package export turns the active vault note into a standalone HTML document
// ready for upload: markdown rendered through goldmark, wrapped in a fixed
// skeleton, with image attachments inlined as base64 data URIs.
package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/vault"
	"github.com/vkarev/arpub/models"
)

// stylesheetURL is the CDN stylesheet linked from every exported document.
const stylesheetURL = "https://cdn.jsdelivr.net/npm/water.css@2/out/water.css"

const documentSkeleton = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="%s">
</head>
<body>
%s
</body>
</html>`

// Exporter renders the active note to a full HTML document string.
type Exporter struct {
	host     vault.DocumentHost
	markdown goldmark.Markdown
	logger   *logger.Logger
}

// New constructs an Exporter over the given document host. The goldmark
// engine is configured once (GFM extensions, raw HTML allowed) and reused;
// it is stateless and safe for repeated Convert calls.
func New(host vault.DocumentHost, log *logger.Logger) *Exporter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(ghtml.WithUnsafe()),
	)

	return &Exporter{host: host, markdown: md, logger: log}
}

// Export reads the active note, renders it, and inlines its image
// attachments. When there is no active note it returns
// [vault.ErrNoActiveNote]; the caller shows a notice and aborts without
// opening the upload modal. Every other failure is a real error.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	note, err := e.host.ActiveNote(ctx)
	if err != nil {
		return "", err
	}

	doc, err := e.render(note)
	if err != nil {
		return "", err
	}

	doc, err = e.inlineAttachments(ctx, note, doc)
	if err != nil {
		return "", err
	}

	e.logger.Info().
		Str("note", note.Path).
		Int("bytes", len(doc)).
		Msg("note exported")

	return doc, nil
}

// render converts the note markdown to HTML and wraps it in the fixed
// document skeleton with the note base name as title.
func (e *Exporter) render(note models.Note) (string, error) {
	var body bytes.Buffer
	if err := e.markdown.Convert([]byte(note.Content), &body); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return fmt.Sprintf(documentSkeleton,
		html.EscapeString(note.BaseName()),
		stylesheetURL,
		strings.TrimRight(body.String(), "\n"),
	), nil
}

// inlineAttachments replaces every embed-link occurrence of each resolved
// attachment with an <img> tag carrying a base64 data URI. Both the plain
// ![[name]] form and the sized ![[name|300]] form are replaced; the size
// suffix is discarded.
//
// Replacement matches the embed text wherever it appears: if the same
// ![[name]] text occurs in prose it is replaced as well. This matches the
// original behaviour and is a documented limitation, not something to guard
// against here.
func (e *Exporter) inlineAttachments(ctx context.Context, note models.Note, doc string) (string, error) {
	attachments, err := e.host.EmbeddedAttachments(ctx, note)
	if err != nil {
		return "", fmt.Errorf("list embedded attachments: %w", err)
	}

	for _, att := range attachments {
		data, err := e.host.ReadBinary(ctx, att)
		if err != nil {
			return "", fmt.Errorf("read attachment %q: %w", att.Name, err)
		}

		dataURI := fmt.Sprintf("data:%s;base64,%s",
			mimeTypeFor(att.Ext()),
			base64.StdEncoding.EncodeToString(data),
		)
		imgTag := fmt.Sprintf(`<img src="%s" alt="%s">`, dataURI, html.EscapeString(att.Name))

		doc = embedOccurrences(att.Name).ReplaceAllLiteralString(doc, imgTag)
	}

	return doc, nil
}

// embedOccurrences builds a pattern matching every embed link for the given
// attachment name, with or without a |size suffix.
func embedOccurrences(name string) *regexp.Regexp {
	return regexp.MustCompile(`!\[\[` + regexp.QuoteMeta(name) + `(?:\|[^\[\]]*)?\]\]`)
}
