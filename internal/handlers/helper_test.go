package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would otherwise get its own in-memory db
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Address{},
		&models.Service{},
		&models.Schedule{},
		&models.AuditLog{},
	))

	r := gin.New()
	routes.RegisterRoutes(r, db, zerolog.Nop())

	return r, db
}

func doRequest(
	t *testing.T,
	r *gin.Engine,
	method string,
	path string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --------- fixture helpers ---------

func createTestClient(t *testing.T, r *gin.Engine, name, phone string) uint {
	t.Helper()

	w := doRequest(t, r, "POST", "/clients", map[string]any{
		"name":         name,
		"phone_number": phone,
		"street":       "Main St",
		"neighborhood": "Downtown",
		"reference":    "Near the park",
		"number":       "42",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	return uint(decodeBody(t, w)["id"].(float64))
}

func createTestService(t *testing.T, r *gin.Engine, serviceType string, price float64) uint {
	t.Helper()

	w := doRequest(t, r, "POST", "/services", map[string]any{
		"type":        serviceType,
		"description": fmt.Sprintf("%s service", serviceType),
		"price":       price,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	return uint(decodeBody(t, w)["id"].(float64))
}

func createTestSchedule(
	t *testing.T,
	r *gin.Engine,
	clientID uint,
	serviceID uint,
	date string,
	shift string,
) uint {
	t.Helper()

	w := doRequest(t, r, "POST", "/schedules", map[string]any{
		"client_id":   clientID,
		"service_id":  serviceID,
		"date":        date,
		"shift":       shift,
		"description": "scheduled job",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	return uint(decodeBody(t, w)["id"].(float64))
}
