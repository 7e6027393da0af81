package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	testToken = "test"
	githubCom = "https://github.com"
)

// recordedRequest is what the stub server saw of one call.
type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	ContentType string
	Body        string
}

// stubServer serves testdata/{target host}/{api path}.json, the way the
// service would answer for the page named by the "url" query parameter.
type stubServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()

	s := &stubServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.Query(),
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(body),
	})
	s.mu.Unlock()

	target, err := url.Parse(r.URL.Query().Get("url"))
	if err != nil {
		http.Error(w, `{"error":"bad url"}`, http.StatusBadRequest)
		return
	}

	switch target.Host {
	case "notjson.example":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>not json</body></html>"))
		return
	case "badutf8.example":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{\"title\":\"\xff\xfe\"}"))
		return
	case "slow.example":
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
			return
		}
	}

	resource := filepath.Join("testdata", target.Host, strings.Trim(r.URL.Path, "/")+".json")
	data, err := os.ReadFile(resource)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Could not download page (404)","errorCode":404}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *stubServer) calls() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

func (s *stubServer) lastCall(t *testing.T) recordedRequest {
	t.Helper()
	calls := s.calls()
	if len(calls) == 0 {
		t.Fatal("expected a request to reach the stub server")
	}
	return calls[len(calls)-1]
}

// newTestClient returns a client for the stub served by the given backend.
func (s *stubServer) newTestClient(t *testing.T, backend Backend, opts ...Option) *Client {
	t.Helper()
	tr, err := NewTransport(backend, s.Client())
	if err != nil {
		t.Fatalf("NewTransport(%q) error = %v", backend, err)
	}
	opts = append([]Option{WithAPIRoot(s.URL), WithTransport(tr)}, opts...)
	return NewClient(testToken, opts...)
}

// rewriteHost sends every request to the stub server whatever its host.
type rewriteHost struct {
	target *url.URL
	next   http.RoundTripper
}

func (rt rewriteHost) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	r.Host = rt.target.Host
	return rt.next.RoundTrip(r)
}

// useStubAsDefault points DefaultTransport at the stub for the rest of the
// test, so package level shortcuts can be exercised.
func useStubAsDefault(t *testing.T, s *stubServer) {
	t.Helper()

	target, err := url.Parse(s.URL)
	if err != nil {
		t.Fatal(err)
	}
	hc := &http.Client{Transport: rewriteHost{target: target, next: http.DefaultTransport}}
	tr, err := NewTransport("", hc)
	if err != nil {
		t.Fatal(err)
	}

	DefaultTransport()
	prev := defaultTransport
	defaultTransport = tr
	t.Cleanup(func() { defaultTransport = prev })
}

// asObject asserts that v is a decoded JSON object.
func asObject(t *testing.T, v any) map[string]any {
	t.Helper()
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected JSON object, got %T", v)
	}
	return obj
}
