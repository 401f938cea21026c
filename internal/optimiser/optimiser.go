package optimiser

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/symposio/media-service-go/internal/port"
)

// thumbnailQuality is the lossy WebP quality for generated thumbnails.
const thumbnailQuality = 80

type FileOptimiser struct {
	webpEnc WebPEncoder
	pdfOpt  PDFOptimizer
}

// compile-time check: *FileOptimiser must satisfy port.FileOptimiser
var _ port.FileOptimiser = (*FileOptimiser)(nil)

func NewFileOptimiser(webpEnc WebPEncoder, pdfOpt PDFOptimizer) *FileOptimiser {
	log.Println("initialising file optimiser...")
	return &FileOptimiser{
		webpEnc: webpEnc,
		pdfOpt:  pdfOpt,
	}
}

// Thumbnail decodes the image (JPEG, PNG, GIF or WebP), scales it down to
// maxWidth keeping aspect ratio, and re-encodes it as lossy WebP. Images
// already narrower than maxWidth keep their dimensions.
func (o *FileOptimiser) Thumbnail(mimeType string, r io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := o.webpEnc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if maxWidth > 0 && bounds.Dx() > maxWidth {
		height := bounds.Dy() * maxWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	buf := &bytes.Buffer{}
	if err := o.webpEnc.Encode(img, thumbnailQuality, buf); err != nil {
		return nil, fmt.Errorf("optimiser: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

// OptimisePDF losslessly rewrites a PDF through pdfcpu, stripping unused
// objects. pdfcpu works on files, so the bytes round-trip through temp files.
func (o *FileOptimiser) OptimisePDF(data []byte) ([]byte, error) {
	inFile, err := os.CreateTemp("", "pdf_in_*.pdf")
	if err != nil {
		return nil, fmt.Errorf("optimiser: could not create temp input PDF: %w", err)
	}
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			log.Printf("failed to remove in temp file %q: %v", name, err)
		}
	}(inFile.Name())

	if _, err := inFile.Write(data); err != nil {
		_ = inFile.Close()
		return nil, fmt.Errorf("optimiser: failed to write temp input PDF: %w", err)
	}
	_ = inFile.Close()

	outFile, err := os.CreateTemp("", "pdf_out_*.pdf")
	if err != nil {
		return nil, fmt.Errorf("optimiser: could not create temp output PDF: %w", err)
	}
	_ = outFile.Close()
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			log.Printf("failed to remove out temp file %q: %v", name, err)
		}
	}(outFile.Name())

	if err := o.pdfOpt.OptimizeFile(inFile.Name(), outFile.Name()); err != nil {
		return nil, fmt.Errorf("optimiser: pdfcpu optimization failed: %w", err)
	}

	out, err := os.ReadFile(outFile.Name())
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to read optimized PDF: %w", err)
	}
	return out, nil
}
