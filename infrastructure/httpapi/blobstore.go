package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tee-settlement/domain/errors"
)

const maxDatasetSize = 8 << 20

// BlobStore keeps uploaded dataset payloads in memory so the compute
// workers can fetch them back over HTTP. Entries live for the lifetime
// of the process.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

type blob struct {
	contentType string
	data        []byte
}

func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string]blob)}
}

// Put stores a payload and returns its generated id.
func (b *BlobStore) Put(contentType string, data []byte) string {
	id := uuid.New().String()
	b.mu.Lock()
	b.blobs[id] = blob{contentType: contentType, data: data}
	b.mu.Unlock()
	return id
}

// Get returns the payload for an id, or ErrNotFound.
func (b *BlobStore) Get(id string) (string, []byte, error) {
	b.mu.RLock()
	entry, ok := b.blobs[id]
	b.mu.RUnlock()
	if !ok {
		return "", nil, errors.NewDomainError(errors.ErrNotFound, "dataset not found")
	}
	return entry.contentType, entry.data, nil
}

func (s *Server) handleUploadDataset(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDatasetSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dataset payload is empty"})
		return
	}
	if len(data) > maxDatasetSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "dataset payload exceeds size limit"})
		return
	}

	contentType := c.ContentType()
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id := s.Datasets.Put(contentType, data)

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":  id,
		"url": fmt.Sprintf("%s://%s/datasets/%s", scheme, c.Request.Host, id),
	})
}

func (s *Server) handleGetDataset(c *gin.Context) {
	contentType, data, err := s.Datasets.Get(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
