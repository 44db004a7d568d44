package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-purchase-tracker/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingServer tracks list fetches so cache behavior is observable.
type countingServer struct {
	listCalls   int
	detailCalls int
}

func (s *countingServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/internal/purchase":
			s.listCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"purchase_list":       []interface{}{},
					"total_current_month": 0,
				},
			})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/v1/internal/purchase/"):
			s.detailCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"purchase_id": "abc", "product_name": "Rice"},
			})
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"purchase_id": "abc", "deleted": true},
			})
		}
	})
}

func setupVM(t *testing.T) (*PurchaseViewModel, *countingServer) {
	t.Helper()
	backend := &countingServer{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return NewPurchaseViewModel(client.New(srv.URL, "", nil), NewQueryCache()), backend
}

func TestListReadsThroughCache(t *testing.T) {
	vm, backend := setupVM(t)
	ctx := context.Background()

	_, err := vm.List(ctx)
	require.NoError(t, err)
	_, err = vm.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, backend.listCalls, "second list must be served from cache")
}

func TestMutationsInvalidateListCache(t *testing.T) {
	vm, backend := setupVM(t)
	ctx := context.Background()

	_, err := vm.List(ctx)
	require.NoError(t, err)

	_, err = vm.Create(ctx, &client.PurchaseInput{})
	require.NoError(t, err)

	_, err = vm.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.listCalls, "create must invalidate the list cache")

	_, err = vm.Update(ctx, "abc", &client.PurchaseInput{})
	require.NoError(t, err)
	_, err = vm.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, backend.listCalls, "update must invalidate the list cache")

	require.NoError(t, vm.Delete(ctx, "abc"))
	_, err = vm.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, backend.listCalls, "delete must invalidate the list cache")
}

func TestDetailAlwaysFetchesFresh(t *testing.T) {
	vm, backend := setupVM(t)
	ctx := context.Background()

	_, err := vm.Detail(ctx, "abc")
	require.NoError(t, err)
	_, err = vm.Detail(ctx, "abc")
	require.NoError(t, err)

	assert.Equal(t, 2, backend.detailCalls, "edit forms must never see a stale record")
}

func TestQueryCache(t *testing.T) {
	c := NewQueryCache()

	_, ok := c.Get(KeyPurchases)
	assert.False(t, ok)

	c.Put(KeyPurchases, "v1")
	c.Put(KeyPurchase("abc"), "v2")

	v, ok := c.Get(KeyPurchases)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	c.Invalidate(KeyPurchases, KeyPurchase("abc"))
	_, ok = c.Get(KeyPurchases)
	assert.False(t, ok)
	_, ok = c.Get(KeyPurchase("abc"))
	assert.False(t, ok)
}
