package rhea

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLookuper struct {
	calls map[string]int
	ids   map[string][]string
	err   error
}

func (l *countingLookuper) Lookup(_ context.Context, ec string) ([]string, error) {
	if l.calls == nil {
		l.calls = make(map[string]int)
	}
	l.calls[ec]++
	if l.err != nil {
		return nil, l.err
	}
	return l.ids[ec], nil
}

func TestCacheHitSkipsNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhea_cache.json")
	lookuper := &countingLookuper{ids: map[string][]string{
		"3.2.1.23": {"RHEA:10076"},
	}}

	c, err := Open(path, lookuper, nil)
	require.NoError(t, err)

	ctx := context.Background()
	first := c.Reactions(ctx, "3.2.1.23")
	assert.Equal(t, []string{"RHEA:10076"}, first)
	assert.Equal(t, 1, lookuper.calls["3.2.1.23"])

	second := c.Reactions(ctx, "3.2.1.23")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, lookuper.calls["3.2.1.23"], "second lookup must be answered from cache")
}

func TestCachePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhea_cache.json")
	lookuper := &countingLookuper{ids: map[string][]string{
		"3.5.1.5": {"RHEA:20557"},
	}}

	c, err := Open(path, lookuper, nil)
	require.NoError(t, err)
	c.Reactions(context.Background(), "3.5.1.5")

	// A fresh cache over the same file answers without the network.
	reopened, err := Open(path, &countingLookuper{err: errors.New("no network")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
	assert.Equal(t, []string{"RHEA:20557"}, reopened.Reactions(context.Background(), "3.5.1.5"))
}

func TestCacheStoresFailuresAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhea_cache.json")
	lookuper := &countingLookuper{err: errors.New("endpoint down")}

	c, err := Open(path, lookuper, nil)
	require.NoError(t, err)

	ctx := context.Background()
	assert.Empty(t, c.Reactions(ctx, "1.1.1.1"))
	assert.Empty(t, c.Reactions(ctx, "1.1.1.1"))
	assert.Equal(t, 1, lookuper.calls["1.1.1.1"], "failure must be cached, not retried")
}

func TestCacheEmptyECStaysLocal(t *testing.T) {
	lookuper := &countingLookuper{}
	c, err := Open(filepath.Join(t.TempDir(), "rhea_cache.json"), lookuper, nil)
	require.NoError(t, err)

	assert.Nil(t, c.Reactions(context.Background(), ""))
	assert.Empty(t, lookuper.calls)
}

func TestOpenRejectsCorruptCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhea_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse cache")
}

func TestClientParsesBothResponseShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3.2.1.23":
			w.Write([]byte(`{"results": [{"rheaId": 10076}, {"rheaId": "10077"}, {}]}`))
		case "/3.5.1.5":
			w.Write([]byte(`[{"rheaId": 20557}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.baseURL = srv.URL
	c.pace = 0

	ids, err := c.Lookup(context.Background(), "3.2.1.23")
	require.NoError(t, err)
	assert.Equal(t, []string{"10076", "10077"}, ids)

	ids, err = c.Lookup(context.Background(), "3.5.1.5")
	require.NoError(t, err)
	assert.Equal(t, []string{"20557"}, ids)

	_, err = c.Lookup(context.Background(), "9.9.9.9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
