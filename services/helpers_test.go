package services

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mrnavastar/server-launcher/api"
)

// metaServer serves canned bodies by path and records every request path.
type metaServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newMetaServer(t *testing.T, routes map[string]string) *metaServer {
	t.Helper()
	s := &metaServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		s.mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *metaServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *metaServer) APIClient() *api.Client {
	return clientFor(s.URL)
}

func clientFor(url string) *api.Client {
	return api.NewClient(api.Endpoints{
		FabricMeta:    url,
		QuiltMeta:     url,
		QuiltMaven:    url,
		ForgeFiles:    url,
		ForgeMaven:    url,
		NeoForgeMaven: url,
		MojangMeta:    url,
		GitHub:        url,
	})
}

// unreachableClient points every endpoint at a server that is already closed.
func unreachableClient(t *testing.T) *api.Client {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return clientFor(url)
}

type runCall struct {
	Jar  string
	Args []string
}

// fakeRunner records invocations instead of starting java.
type fakeRunner struct {
	calls []runCall

	// status decides the exit code of a call; nil means 0.
	status func(call runCall) int
}

func (f *fakeRunner) Run(args []string) (int, error) {
	return f.record(runCall{Args: args}), nil
}

func (f *fakeRunner) RunJar(jar string, args []string) (int, error) {
	return f.record(runCall{Jar: jar, Args: args}), nil
}

func (f *fakeRunner) record(call runCall) int {
	f.calls = append(f.calls, call)
	if f.status == nil {
		return 0
	}
	return f.status(call)
}

func equalArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
