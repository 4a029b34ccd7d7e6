package httputil

import (
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; feature payloads are portfolio-sized
// JSON, never bulk uploads
const maxBodyBytes = 1 << 20

// ReadBody reads a request body with the standard size cap
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}
