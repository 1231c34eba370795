package culler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/feed/internal/culler"
	"github.com/nikbrunner/feed/internal/model"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	mux.HandleFunc("/get-only", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func pages(urls ...string) []model.Node {
	nodes := make([]model.Node, len(urls))
	for i, u := range urls {
		nodes[i] = model.Node{ID: u, Title: u, URL: u}
	}
	return nodes
}

func TestCheck(t *testing.T) {
	srv := newServer(t)
	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()

	var progress []int
	results := culler.Check(context.Background(), pages(
		srv.URL+"/ok",
		srv.URL+"/gone",
		srv.URL+"/missing",
		srv.URL+"/get-only",
		srv.URL+"/broken",
		closed.URL+"/x",
	), culler.Options{
		Concurrency: 2,
		OnProgress:  func(done, _ int) { progress = append(progress, done) },
	})

	assert.Assert(t, is.Len(results, 6))
	want := []culler.Status{culler.Healthy, culler.Dead, culler.Dead, culler.Healthy, culler.Unreachable, culler.Unreachable}
	for i, r := range results {
		assert.Check(t, is.Equal(r.Status, want[i]), r.Bookmark.URL)
		assert.Check(t, is.Equal(r.Page, i+1))
	}
	assert.Check(t, is.Equal(results[1].StatusCode, http.StatusGone))
	assert.Check(t, is.Equal(results[4].Error, "Internal Server Error"))
	assert.Check(t, is.Equal(results[5].Error, "Connection refused"))
	assert.Check(t, is.DeepEqual(progress, []int{1, 2, 3, 4, 5, 6}))

	dead := culler.DeadResults(results)
	assert.Assert(t, is.Len(dead, 2))
	assert.Check(t, is.Equal(dead[0].Page, 2))
}

func TestCheck_ExcludedDomain(t *testing.T) {
	srv := newServer(t)
	results := culler.Check(context.Background(), pages(srv.URL+"/missing"), culler.Options{
		ExcludeDomains: []string{"127.0.0.1"},
	})

	assert.Assert(t, is.Len(results, 1))
	assert.Check(t, is.Equal(results[0].Status, culler.Unreachable))
	assert.Check(t, is.Equal(results[0].Error, "Possibly private (auth required)"))
}

func TestCheck_Cancelled(t *testing.T) {
	srv := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := culler.Check(ctx, pages(srv.URL+"/ok"), culler.Options{})
	assert.Check(t, is.Equal(results[0].Status, culler.Unreachable))
	assert.Check(t, is.Equal(results[0].Error, "Cancelled"))
}

func TestCheck_Empty(t *testing.T) {
	assert.Check(t, is.Len(culler.Check(context.Background(), nil, culler.Options{}), 0))
}

func TestIsExcludedDomain(t *testing.T) {
	exclude := map[string]bool{"github.com": true}

	tests := []struct {
		url  string
		want bool
	}{
		{"https://github.com/me/private", true},
		{"https://gist.github.com/x", true},
		{"https://notgithub.com/x", false},
		{"https://GitHub.com:443/x", true},
		{"::not a url", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, culler.IsExcludedDomain(tt.url, exclude), tt.want)
		})
	}
}
