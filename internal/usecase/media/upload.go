package media

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"

	"github.com/symposio/media-service-go/internal/port"
)

type uploadResult struct {
	objectKey   string
	url         string
	sizeBytes   int64
	description string
	err         error
}

// validateBatch enforces whole-batch constraints before any network I/O.
// A violation rejects the batch wholesale.
func validateBatch(files []port.FileUpload, limits Limits) error {
	if len(files) == 0 {
		return newValidationError("no files provided")
	}
	if len(files) > limits.MaxBatchCount {
		return newValidationError("too many files: %d (max %d per batch)", len(files), limits.MaxBatchCount)
	}
	var total int64
	for _, f := range files {
		total += f.SizeBytes
	}
	if total > limits.MaxBatchSizeBytes {
		return newValidationError("batch too large: %d bytes across %d files (max %d bytes)", total, len(files), limits.MaxBatchSizeBytes)
	}
	return nil
}

// validateFile enforces per-file constraints; a violation fails that file only.
func validateFile(f port.FileUpload, limits Limits) (category string, err error) {
	if f.SizeBytes > limits.MaxFileSizeBytes {
		return "", fmt.Errorf("file %q too large: %d bytes (max %d bytes)", f.Name, f.SizeBytes, limits.MaxFileSizeBytes)
	}
	c, ok := CategoryForMime(f.ContentType)
	if !ok {
		return "", fmt.Errorf("unsupported mime-type %q for file %q", f.ContentType, f.Name)
	}
	return c, nil
}

// uploadMany validates each file and writes the valid ones to the blob store
// concurrently, so batch latency is bound by the slowest upload. The results
// slice keeps input ordering.
func uploadMany(ctx context.Context, strg port.Storage, opt port.FileOptimiser, gen port.UUIDGen, limits Limits, files []port.FileUpload) []uploadResult {
	results := make([]uploadResult, len(files))
	var wg sync.WaitGroup
	for i := range files {
		category, err := validateFile(files[i], limits)
		if err != nil {
			results[i] = uploadResult{err: err}
			continue
		}
		wg.Add(1)
		go func(i int, f port.FileUpload, category string) {
			defer wg.Done()
			results[i] = uploadOne(ctx, strg, opt, gen, f, category)
		}(i, files[i], category)
	}
	wg.Wait()
	return results
}

func uploadOne(ctx context.Context, strg port.Storage, opt port.FileOptimiser, gen port.UUIDGen, f port.FileUpload, category string) uploadResult {
	data := f.Data
	var description string
	if IsPdf(f.ContentType) {
		if opt != nil {
			optimised, err := opt.OptimisePDF(data)
			if err != nil {
				log.Printf("pdf optimisation failed for %q, storing original: %v", f.Name, err)
			} else {
				data = optimised
			}
		}
		if desc, err := pdfDescription(data); err != nil {
			log.Printf("could not read page count of %q: %v", f.Name, err)
		} else {
			description = desc
		}
	}

	key := buildObjectKey(gen, category, f.Name)
	if err := strg.SaveFile(ctx, key, bytes.NewReader(data), int64(len(data)), map[string]string{
		"Content-Type": f.ContentType,
	}); err != nil {
		return uploadResult{err: err}
	}
	return uploadResult{objectKey: key, url: strg.PublicURL(key), sizeBytes: int64(len(data)), description: description}
}

// pdfDescription derives a short human-readable description from the PDF
// page count.
func pdfDescription(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error opening pdf reader: %w", err)
	}
	n := reader.NumPage()
	if n == 1 {
		return "PDF document, 1 page", nil
	}
	return fmt.Sprintf("PDF document, %d pages", n), nil
}

// buildObjectKey derives a globally unique blob key from a random identifier
// plus the original file name, under the category prefix.
func buildObjectKey(gen port.UUIDGen, category, name string) string {
	return fmt.Sprintf("%s/%s_%s", category, gen().String(), sanitizeFileName(name))
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}
