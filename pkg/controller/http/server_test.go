package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	server "github.com/prefix-dev/pixi-testsuite/pkg/controller/http"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

func newTestServer(t *testing.T, channelDir string) *httptest.Server {
	t.Helper()

	srv, err := server.NewServer(context.Background(), server.WithChannelDir(channelDir))
	gt.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthEndpoint(t *testing.T) {
	channelDir := t.TempDir()
	ts := newTestServer(t, channelDir)

	resp, err := http.Get(ts.URL + "/health")
	gt.NoError(t, err)
	defer resp.Body.Close()

	gt.Number(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Value(t, resp.Header.Get("Content-Type")).Equal("application/json")

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	gt.Value(t, status.Status).Equal("healthy")
	gt.Value(t, status.Service).Equal("pixi-testsuite")
	gt.Value(t, status.Channel).Equal(channelDir)
}

func TestChannelFileServing(t *testing.T) {
	channelDir := t.TempDir()
	noarch := filepath.Join(channelDir, "noarch")
	gt.NoError(t, os.MkdirAll(noarch, 0o755))
	gt.NoError(t, os.WriteFile(filepath.Join(noarch, "repodata.json"),
		[]byte(`{"packages":{}}`), 0o644))

	ts := newTestServer(t, channelDir)

	resp, err := http.Get(ts.URL + "/noarch/repodata.json")
	gt.NoError(t, err)
	defer resp.Body.Close()

	gt.Number(t, resp.StatusCode).Equal(http.StatusOK)
	body, err := io.ReadAll(resp.Body)
	gt.NoError(t, err)
	gt.Value(t, string(body)).Equal(`{"packages":{}}`)
}

func TestChannelFileNotFound(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	resp, err := http.Get(ts.URL + "/noarch/missing.conda")
	gt.NoError(t, err)
	defer resp.Body.Close()

	gt.Number(t, resp.StatusCode).Equal(http.StatusNotFound)
}
