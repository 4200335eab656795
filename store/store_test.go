package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreStandardizesJSONC(t *testing.T) {
	in := []byte(`{
  // server port
  "port": 8080,
  "hosts": ["a", "b",],
}`)
	st := NewMemStore(in, nil)
	require.True(t, json.Valid(st.DocumentText()), "JSONC input was not standardized:\n%s", st.DocumentText())

	var cfg struct {
		Port  int      `json:"port"`
		Hosts []string `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal(st.DocumentText(), &cfg))
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.Hosts)
}

func TestMemStoreKeepsInvalidInputForTheCore(t *testing.T) {
	in := []byte(`{definitely not json`)
	st := NewMemStore(in, nil)
	assert.Equal(t, in, st.DocumentText())
}

func TestMemStoreDirtyFlag(t *testing.T) {
	st := NewMemStore([]byte(`{}`), nil)
	assert.False(t, st.Dirty())

	st.SetDocumentText([]byte(`{"a":1}`), true)
	assert.True(t, st.Dirty())
	assert.Equal(t, `{"a":1}`, string(st.DocumentText()))

	st.SetDocumentText([]byte(`{"a":1}`), false)
	assert.False(t, st.Dirty())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	st, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, st.Path())

	st.SetDocumentText([]byte(`{"a":2}`), true)
	require.True(t, st.Dirty())
	require.NoError(t, st.Flush())
	assert.False(t, st.Dirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":2}\n", string(data))
}

func TestFileStoreOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)
}
