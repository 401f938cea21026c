package port

import "io"

// FileOptimiser defines file transformation operations applied around uploads.
type FileOptimiser interface {
	// Thumbnail scales the image down to maxWidth (keeping aspect ratio) and
	// encodes it as WebP. Images narrower than maxWidth are re-encoded as-is.
	Thumbnail(mimeType string, r io.Reader, maxWidth int) ([]byte, error)
	// OptimisePDF losslessly rewrites a PDF, stripping unused objects.
	OptimisePDF(data []byte) ([]byte, error)
}
