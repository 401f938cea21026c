package optimiser

import (
	"image"
	"io"

	"github.com/chai2010/webp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type webpEncoder struct{}

func NewWebPEncoder() WebPEncoder { return webpEncoder{} }

func (webpEncoder) Encode(img image.Image, quality int, w io.Writer) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}

func (webpEncoder) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

type pdfOptimizer struct{}

func NewPDFOptimizer() PDFOptimizer { return pdfOptimizer{} }

func (pdfOptimizer) OptimizeFile(inPath, outPath string) error {
	return api.OptimizeFile(inPath, outPath, nil)
}
