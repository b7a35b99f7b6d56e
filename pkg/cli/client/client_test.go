package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LENAX/dag-checker/pkg/api"
	"github.com/LENAX/dag-checker/pkg/api/dto"
	"github.com/LENAX/dag-checker/pkg/config"
	"github.com/LENAX/dag-checker/pkg/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := api.SetupRouter(config.Default(), logging.Discard(), nil, "test")
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Ping(t *testing.T) {
	srv := newTestServer(t)

	resp, err := New(srv.URL + "/").Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pong", resp.Ping)
}

func TestClient_ParsePipeline(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	resp, err := c.ParsePipeline(context.Background(), dto.ParsePipelineRequest{
		Nodes: []int{1, 2, 3},
		Edges: []dto.Edge{{1, 2}, {2, 3}, {3, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.ParsePipelineResponse{NumNodes: 3, NumEdges: 3, IsDAG: false}, *resp)
}

func TestClient_ParsePipeline_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	// Nodes 为nil，序列化为null，服务端返回422
	_, err := New(srv.URL).ParsePipeline(context.Background(), dto.ParsePipelineRequest{
		Edges: []dto.Edge{},
	})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "nodes", ve.Fields[0].Field)
	assert.Contains(t, ve.Error(), "nodes: field required")
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
}
