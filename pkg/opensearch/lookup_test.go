package opensearch_test

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/opensearch"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// fakeCluster answers the info and _count endpoints in-process.
type fakeCluster struct {
	mu       sync.Mutex
	count    int
	status   int
	lastPath string
	lastBody string
}

func (f *fakeCluster) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := http.StatusOK
	body := `{"name":"node-1","cluster_name":"test","version":{"distribution":"opensearch","number":"2.11.0"}}`

	if strings.HasSuffix(req.URL.Path, "/_count") {
		f.lastPath = req.URL.Path
		if req.Body != nil {
			b, _ := io.ReadAll(req.Body)
			f.lastBody = string(b)
		}
		if f.status != 0 {
			status = f.status
			body = `{"error":{"type":"index_not_found_exception"},"status":404}`
		} else {
			body = `{"count":` + strconv.Itoa(f.count) + `,"_shards":{"total":1,"successful":1,"skipped":0,"failed":0}}`
		}
	}

	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func newLookup(t *testing.T, cluster *fakeCluster) *opensearch.Lookup {
	t.Helper()
	client, err := opensearch.New(context.Background(), opensearch.Config{
		Addresses:    []string{"http://opensearch.test:9200"},
		DisableRetry: true,
	}, cluster)
	require.NoError(t, err)
	return opensearch.NewLookup(client)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("count above zero means taken", func(t *testing.T) {
		cluster := &fakeCluster{count: 1}
		unique, err := rules.CheckUnique(ctx, newLookup(t, cluster), "users", "email.keyword", "a@b.com")
		require.NoError(t, err)
		assert.False(t, unique)
		assert.Equal(t, "/users/_count", cluster.lastPath)
		assert.JSONEq(t, `{"query":{"term":{"email.keyword":"a@b.com"}}}`, cluster.lastBody)
	})

	t.Run("zero count means unique", func(t *testing.T) {
		unique, err := rules.CheckUnique(ctx, newLookup(t, &fakeCluster{}), "users", "email", "a@b.com")
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("error responses are wrapped", func(t *testing.T) {
		cluster := &fakeCluster{status: http.StatusNotFound}
		_, err := rules.CheckUnique(ctx, newLookup(t, cluster), "missing", "email", "a@b.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrLookupFailed)
		assert.ErrorIs(t, err, opensearch.ErrLookupQuery)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("bad names never leave the process", func(t *testing.T) {
		cluster := &fakeCluster{}
		_, err := newLookup(t, cluster).Exists(ctx, "users/_doc", "email", "x")
		assert.ErrorIs(t, err, rules.ErrInvalidArgument)
		assert.Empty(t, cluster.lastPath)
	})
}

func TestCountQuery(t *testing.T) {
	body, err := opensearch.CountQuery("orders", "number", 1001)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":{"term":{"number":1001}}}`, string(body))

	_, err = opensearch.CountQuery("orders", "number", func() {})
	assert.ErrorIs(t, err, rules.ErrInvalidArgument)
}

func TestNew(t *testing.T) {
	_, err := opensearch.New(context.Background(), opensearch.Config{}, nil)
	assert.ErrorIs(t, err, opensearch.ErrNoAddresses)
}
