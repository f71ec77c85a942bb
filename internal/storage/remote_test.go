package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStorageUploadPDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/entregas-rendir/upload-pdf", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "42", r.FormValue("entregaId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "liquidacion_entrega_42.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://docs.velamar.app/liquidaciones/42.pdf"}`))
	}))
	defer server.Close()

	client := NewRemoteStorage(server.URL, func() string { return "token-123" })
	url, err := client.UploadPDF(context.Background(), 42, []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "https://docs.velamar.app/liquidaciones/42.pdf", url)
}

func TestRemoteStorageUploadPDFNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRemoteStorage(server.URL, func() string { return "token-123" })
	_, err := client.UploadPDF(context.Background(), 42, []byte("%PDF-1.4"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestRemoteStorageUploadPDFMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewRemoteStorage(server.URL, func() string { return "" })
	_, err := client.UploadPDF(context.Background(), 7, []byte("%PDF-1.4"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing url")
}
