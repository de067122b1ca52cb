package export

// mimeTypes maps attachment extensions to the MIME type used in the data URI.
// Anything else falls back to application/octet-stream.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
}

const defaultMIMEType = "application/octet-stream"

func mimeTypeFor(ext string) string {
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return defaultMIMEType
}
