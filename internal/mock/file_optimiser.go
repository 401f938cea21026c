package mock

import "io"

// MockFileOptimiser implements file optimisation operations for tests.
type MockFileOptimiser struct {
	ThumbnailOut []byte
	OptimiseOut  []byte

	ThumbnailErr error
	OptimiseErr  error

	ThumbnailCalled bool
	OptimiseCalled  bool
	MaxWidthIn      int
}

func (m *MockFileOptimiser) Thumbnail(mimeType string, r io.Reader, maxWidth int) ([]byte, error) {
	m.ThumbnailCalled = true
	m.MaxWidthIn = maxWidth
	if m.ThumbnailErr != nil {
		return nil, m.ThumbnailErr
	}
	if m.ThumbnailOut != nil {
		return m.ThumbnailOut, nil
	}
	return []byte("thumb"), nil
}

func (m *MockFileOptimiser) OptimisePDF(data []byte) ([]byte, error) {
	m.OptimiseCalled = true
	if m.OptimiseErr != nil {
		return nil, m.OptimiseErr
	}
	if m.OptimiseOut != nil {
		return m.OptimiseOut, nil
	}
	return data, nil
}
