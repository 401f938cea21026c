package mock

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/symposio/media-service-go/internal/port"
)

// Storage implements the storage interface for tests. It records every saved
// and removed key so callers can assert on blob-level side effects.
type Storage struct {
	mu sync.Mutex

	StatInfoOut port.FileInfo
	GetOut      io.ReadSeeker
	ExistsOut   bool

	InitBucketErr error
	StatErr       error
	RemoveErr     error
	GetErr        error
	SaveErr       error
	FileExistsErr error
	// FailSaveFor makes SaveFile fail only for keys containing this substring.
	FailSaveFor string

	InitBucketCalled bool
	StatCalled       bool
	GetCalled        bool
	FileExistsCalled bool
	SavedKeys        []string
	RemovedKeys      []string
}

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaveFor != "" && strings.Contains(fileKey, m.FailSaveFor) {
		return m.SaveErr
	}
	if m.FailSaveFor == "" && m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedKeys = append(m.SavedKeys, fileKey)
	return nil
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return m.RemoveErr
}

func (m *Storage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) GetFile(ctx context.Context, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) FileExists(ctx context.Context, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) PublicURL(fileKey string) string {
	return "https://cdn.example.com/medias/" + fileKey
}

// Removed reports whether fileKey was passed to RemoveFile.
func (m *Storage) Removed(fileKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range m.RemovedKeys {
		if k == fileKey {
			return true
		}
	}
	return false
}
