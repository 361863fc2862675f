// Package testing provides shared test doubles for the update pipeline: a
// path-keyed HTTP server that can stand in for the manifest host, the
// GitHub releases API, and the binary download host at once.
package testing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// MockUpdateServer is an httptest server with per-path canned responses.
type MockUpdateServer struct {
	*httptest.Server
	Responses map[string]MockResponse
	Requests  []MockRequest
}

// MockResponse holds the response data for a path.
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// MockRequest records a request made to the mock server.
type MockRequest struct {
	Method string
	Path   string
}

// NewMockUpdateServer creates a mock server that is closed with the test.
func NewMockUpdateServer(t *testing.T) *MockUpdateServer {
	t.Helper()

	mock := &MockUpdateServer{
		Responses: make(map[string]MockResponse),
	}
	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.Requests = append(mock.Requests, MockRequest{Method: r.Method, Path: r.URL.Path})

		response, ok := mock.Responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
			return
		}
		for key, value := range response.Headers {
			w.Header().Set(key, value)
		}
		if response.StatusCode != 0 {
			w.WriteHeader(response.StatusCode)
		}
		w.Write(response.Body)
	}))
	t.Cleanup(mock.Server.Close)
	return mock
}

// SetManifest serves a manifest line ("YYYYMMDD - message") at path.
func (m *MockUpdateServer) SetManifest(path, date, message string) {
	m.Responses[path] = MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(fmt.Sprintf("%s - %s\n", date, message)),
		Headers:    map[string]string{"Content-Type": "text/plain"},
	}
}

// SetRelease serves a GitHub latest-release document for the repo with a
// single downloadable asset.
func (m *MockUpdateServer) SetRelease(owner, repo, tag, assetName, assetURL string) error {
	doc := map[string]interface{}{
		"tag_name": tag,
		"name":     tag,
		"assets": []map[string]string{
			{"name": assetName, "browser_download_url": assetURL},
		},
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.Responses[fmt.Sprintf("/repos/%s/%s/releases/latest", owner, repo)] = MockResponse{
		StatusCode: http.StatusOK,
		Body:       body,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
	return nil
}

// SetBinary serves raw bytes at path, as the viewer download host would.
func (m *MockUpdateServer) SetBinary(path string, content []byte) {
	m.Responses[path] = MockResponse{
		StatusCode: http.StatusOK,
		Body:       content,
		Headers:    map[string]string{"Content-Type": "application/octet-stream"},
	}
}

// SetError sets a JSON error response for a path.
func (m *MockUpdateServer) SetError(path string, statusCode int, message string) {
	body, _ := json.Marshal(map[string]string{"message": message})
	m.Responses[path] = MockResponse{StatusCode: statusCode, Body: body}
}

// RequestCount returns how many requests hit a path.
func (m *MockUpdateServer) RequestCount(path string) int {
	count := 0
	for _, req := range m.Requests {
		if req.Path == path {
			count++
		}
	}
	return count
}
