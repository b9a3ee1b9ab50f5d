package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakePlatform is an httptest stand-in for the platform REST API. It records every request
// and answers from a route table keyed by "METHOD /path"; unknown routes get the backend's
// 404 body.
type FakePlatform struct {
	mu     sync.Mutex
	calls  []string
	routes map[string]http.HandlerFunc
	srv    *httptest.Server
}

func NewFakePlatform(t *testing.T) *FakePlatform {
	t.Helper()
	f := &FakePlatform{routes: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.calls = append(f.calls, key+"?"+r.URL.RawQuery)
		h, ok := f.routes[key]
		f.mu.Unlock()
		if !ok {
			http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakePlatform) URL() string {
	return f.srv.URL
}

func (f *FakePlatform) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

// JSON registers a route answering status with body encoded as JSON.
func (f *FakePlatform) JSON(method, path string, status int, body any) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

func (f *FakePlatform) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Calls returns the requests seen so far as "METHOD /path?query".
func (f *FakePlatform) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Close shuts the server down early, for tests of an unreachable platform.
func (f *FakePlatform) Close() {
	f.srv.Close()
}
