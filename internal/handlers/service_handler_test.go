package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUpdateService(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, "POST", "/services", map[string]any{
		"type":        "Cleaning",
		"description": "Deep cleaning service",
		"price":       99.99,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	created := decodeBody(t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Cleaning", created["type"])
	assert.Equal(t, 99.99, created["price"])

	updated := doRequest(t, r, "PUT", "/services/1", map[string]any{
		"type":        "Gardening",
		"description": "Garden maintenance",
		"price":       80.00,
	})
	require.Equal(t, 200, updated.Code, updated.Body.String())

	body := decodeBody(t, updated)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Gardening", body["type"])
	assert.Equal(t, "Garden maintenance", body["description"])
	assert.Equal(t, 80.00, body["price"])
}

func TestGetService(t *testing.T) {
	r, _ := newTestServer(t)

	id := createTestService(t, r, "Cleaning", 50.00)

	w := doRequest(t, r, "GET", "/services/1", nil)
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(id), body["id"])
	assert.Equal(t, "Cleaning", body["type"])
}

func TestServiceNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	for _, method := range []string{"GET", "DELETE"} {
		w := doRequest(t, r, method, "/services/99", nil)
		require.Equal(t, 404, w.Code)
		assert.Equal(t, "Service not found", decodeBody(t, w)["message"])
	}

	w := doRequest(t, r, "PUT", "/services/99", map[string]any{
		"type":        "Cleaning",
		"description": "Deep cleaning service",
		"price":       99.99,
	})
	require.Equal(t, 404, w.Code)
}

func TestDeleteService(t *testing.T) {
	r, _ := newTestServer(t)

	createTestService(t, r, "Cleaning", 50.00)

	w := doRequest(t, r, "DELETE", "/services/1", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Service deleted", decodeBody(t, w)["message"])

	gone := doRequest(t, r, "GET", "/services/1", nil)
	require.Equal(t, 404, gone.Code)
}

func TestListServicesPagination(t *testing.T) {
	r, _ := newTestServer(t)

	createTestService(t, r, "Cleaning", 50.00)
	createTestService(t, r, "Maintenance", 150.00)
	createTestService(t, r, "Consulting", 200.00)

	w := doRequest(t, r, "GET", "/services?limit=1&offset=1", nil)
	require.Equal(t, 200, w.Code)

	services := decodeBody(t, w)["services"].([]any)
	require.Len(t, services, 1)
	assert.Equal(t, "Maintenance", services[0].(map[string]any)["type"])
}
