package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TokenProvider supplies the bearer token attached to document-service calls.
// Injected so callers decide where credentials come from instead of the
// client reading a process-wide store.
type TokenProvider func() string

// RemoteStorage uploads generated documents to an external document service
// over HTTP multipart
type RemoteStorage struct {
	baseURL string
	token   TokenProvider
	client  *http.Client
}

// NewRemoteStorage creates a document-service client
func NewRemoteStorage(baseURL string, token TokenProvider) *RemoteStorage {
	return &RemoteStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadPDF posts the document as a multipart form (fields "file" and
// "entregaId") and returns the public URL the service assigned to it
func (s *RemoteStorage) UploadPDF(ctx context.Context, entregaID uint, data []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fmt.Sprintf("liquidacion_entrega_%d.pdf", entregaID))
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("entregaId", strconv.FormatUint(uint64(entregaID), 10)); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/entregas-rendir/upload-pdf", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if s.token != nil {
		req.Header.Set("Authorization", "Bearer "+s.token())
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("document service returned status %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode document service response: %w", err)
	}
	if out.URL == "" {
		return "", errors.New("document service response missing url")
	}

	return out.URL, nil
}
