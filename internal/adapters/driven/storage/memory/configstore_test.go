package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	store.Set("key1", "original")
	store.Set("key1", "updated")

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	store.Set("s", "groq")
	store.Set("i", 42)
	store.Set("i64", int64(7))
	store.Set("f", 0.7)
	store.Set("b", true)
	store.Set("slice", []any{"a", 1, "b"})
	store.Set("strings", []string{"x"})

	assert.Equal(t, "groq", store.GetString("s"))
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 42, store.GetInt("i"))
	assert.Equal(t, 7, store.GetInt("i64"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.InDelta(t, 0.7, store.GetFloat("f"), 1e-9)
	assert.InDelta(t, 42.0, store.GetFloat("i"), 1e-9)
	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("slice"))
	assert.Equal(t, []string{"x"}, store.GetStringSlice("strings"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_Missing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Zero(t, store.GetInt("nope"))
	assert.Zero(t, store.GetFloat("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestNewConfigStoreFrom_CopiesSeed(t *testing.T) {
	seed := map[string]any{"rag.top_k_results": int64(3)}

	store := NewConfigStoreFrom(seed)
	seed["rag.top_k_results"] = int64(9)

	assert.Equal(t, 3, store.GetInt("rag.top_k_results"))
}

func TestConfigStore_GetStringSliceReturnsCopy(t *testing.T) {
	store := NewConfigStore()
	store.Set("server.api_keys", []string{"a", "b"})

	keys := store.GetStringSlice("server.api_keys")
	keys[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("server.api_keys"))
}
