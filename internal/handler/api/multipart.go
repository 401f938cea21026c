package api

import (
	"io"
	"net/http"

	"github.com/symposio/media-service-go/internal/port"
)

// multipart bodies above this spill to temp files
const maxMultipartMemory = 32 << 20

// filesFromForm buffers every file of a multipart field, preserving the order
// they were sent in.
func filesFromForm(r *http.Request, field string) ([]port.FileUpload, error) {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, nil
	}
	var out []port.FileUpload
	for _, fh := range r.MultipartForm.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, port.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   fh.Size,
			Data:        data,
		})
	}
	return out, nil
}

// firstFileFromForm returns the first file of a field, or nil when absent.
func firstFileFromForm(r *http.Request, field string) (*port.FileUpload, error) {
	files, err := filesFromForm(r, field)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return &files[0], nil
}

func formValues(r *http.Request, field string) []string {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.Value[field]
}

func formValue(r *http.Request, field string) (string, bool) {
	vals := formValues(r, field)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
