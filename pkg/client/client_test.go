package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/internal/purchase", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"purchase_list": []map[string]interface{}{
					{"purchase_id": "abc", "product_name": "Rice", "total_price": 11.0},
				},
				"total_current_month": 11.0,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", nil)
	list, err := c.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list.PurchaseList, 1)
	assert.Equal(t, "Rice", list.PurchaseList[0].ProductName)
	assert.Equal(t, 11.0, list.TotalCurrentMonth)
}

func TestGetMapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Purchase not found",
			"code":    "NOT_FOUND",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	_, err := c.Get(context.Background(), "abc")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Validation failed",
			"code":    "VALIDATION_ERROR",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	_, err := c.Create(context.Background(), &PurchaseInput{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
}

func TestDeleteSendsMethodAndPath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"deleted": true},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	require.NoError(t, c.Delete(context.Background(), "abc"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/internal/purchase/abc", gotPath)
}
