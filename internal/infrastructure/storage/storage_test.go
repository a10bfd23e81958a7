package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ============================================================================
// MemoryObjectStorage
// ============================================================================

func TestMemoryObjectStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryObjectStorage()

	data := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, s.Upload(ctx, "images/a.png", data, "image/png"))
	data[0] = 0 // the stored copy is independent

	got, err := s.Download(ctx, "images/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, got)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.DeleteObject(ctx, "images/a.png"))
	_, err = s.Download(ctx, "images/a.png")
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	assert.NoError(t, s.DeleteObject(ctx, "images/missing.png"))
	assert.Error(t, s.Upload(ctx, "", data, "image/png"))
}

// ============================================================================
// S3ObjectStorage
// ============================================================================

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, &config.StorageConfig{AccessKey: "k", SecretKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("access key without secret returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, &config.StorageConfig{Bucket: "b", AccessKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3ObjectStorage(ctx, &config.StorageConfig{
			Bucket:    "ceiling-images",
			AccessKey: "k",
			SecretKey: "s",
			Endpoint:  "minio.local:9000",
		}, WithLogger(zap.NewNop()))
		require.NoError(t, err)
		assert.Equal(t, "ceiling-images", s.Bucket())
	})
}

// fakeS3 answers path-style object requests for a single bucket
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string][]byte
	requests []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	switch r.Method {
	case http.MethodPut:
		f.objects[r.URL.Path] = []byte("stored")
		w.Header().Set("ETag", `"1"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		data, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeS3Storage(t *testing.T) (*S3ObjectStorage, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string][]byte{"/ceiling-images/images/seed.png": []byte("png-bytes")}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3ObjectStorage(context.Background(), &config.StorageConfig{
		Bucket:         "ceiling-images",
		Region:         "us-east-1",
		Endpoint:       srv.URL,
		AccessKey:      "k",
		SecretKey:      "s",
		ForcePathStyle: true,
	})
	require.NoError(t, err)
	return s, fake
}

func TestS3ObjectStorage_Download(t *testing.T) {
	s, _ := newFakeS3Storage(t)

	data, err := s.Download(context.Background(), "images/seed.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestS3ObjectStorage_DownloadMissing(t *testing.T) {
	s, _ := newFakeS3Storage(t)

	_, err := s.Download(context.Background(), "images/none.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestS3ObjectStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	s, fake := newFakeS3Storage(t)

	require.NoError(t, s.Upload(ctx, "images/new.png", []byte{1, 2, 3}, "image/png"))
	require.NoError(t, s.DeleteObject(ctx, "images/new.png"))

	assert.Contains(t, fake.requests, "PUT /ceiling-images/images/new.png")
	assert.Contains(t, fake.requests, "DELETE /ceiling-images/images/new.png")
	assert.NotContains(t, fake.objects, "/ceiling-images/images/new.png")
}

func TestS3ObjectStorage_EmptyKey(t *testing.T) {
	ctx := context.Background()
	s, _ := newFakeS3Storage(t)

	assert.Error(t, s.Upload(ctx, "", nil, "image/png"))
	_, err := s.Download(ctx, "")
	assert.Error(t, err)
	assert.Error(t, s.DeleteObject(ctx, ""))
}

// ============================================================================
// New
// ============================================================================

func TestNew(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	s, err := New(ctx, &config.StorageConfig{Backend: "inline"}, log)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = New(ctx, &config.StorageConfig{Backend: "memory"}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryObjectStorage{}, s)

	_, err = New(ctx, &config.StorageConfig{Backend: "ftp"}, log)
	assert.Error(t, err)
}
