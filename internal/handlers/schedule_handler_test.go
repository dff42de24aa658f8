package handlers_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleClientNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, "POST", "/schedules", map[string]any{
		"client_id":   99,
		"service_id":  1,
		"date":        "2023-09-15",
		"shift":       "morning",
		"description": "first visit",
	})
	require.Equal(t, 404, w.Code)
	assert.Equal(t, "Client not found", decodeBody(t, w)["message"])
}

func TestCreateScheduleServiceNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")

	w := doRequest(t, r, "POST", "/schedules", map[string]any{
		"client_id":   clientID,
		"service_id":  99,
		"date":        "2023-09-15",
		"shift":       "morning",
		"description": "first visit",
	})
	require.Equal(t, 404, w.Code)
	assert.Equal(t, "Service not found", decodeBody(t, w)["message"])
}

func TestCreateScheduleInvalidShift(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	w := doRequest(t, r, "POST", "/schedules", map[string]any{
		"client_id":   clientID,
		"service_id":  serviceID,
		"date":        "2023-09-15",
		"shift":       "midnight",
		"description": "first visit",
	})
	require.Equal(t, 400, w.Code)
}

func TestCreateAndUpdateSchedule(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	w := doRequest(t, r, "POST", "/schedules", map[string]any{
		"client_id":   clientID,
		"service_id":  serviceID,
		"date":        "2023-09-15",
		"shift":       "morning",
		"description": "first visit",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	created := decodeBody(t, w)
	assert.Equal(t, "2023-09-15", created["date"])
	assert.Equal(t, "morning", created["shift"])

	client := created["client"].(map[string]any)
	assert.Equal(t, float64(clientID), client["id"])
	assert.Equal(t, "John Doe", client["name"])

	service := created["service"].(map[string]any)
	assert.Equal(t, "Cleaning", service["type"])

	updated := doRequest(t, r, "PUT", "/schedules/1", map[string]any{
		"client_id":   clientID,
		"service_id":  serviceID,
		"date":        "2023-09-15",
		"shift":       "afternoon",
		"description": "first visit",
	})
	require.Equal(t, 200, updated.Code, updated.Body.String())
	assert.Equal(t, "afternoon", decodeBody(t, updated)["shift"])
}

func TestUpdateScheduleNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	w := doRequest(t, r, "PUT", "/schedules/99", map[string]any{
		"client_id":   clientID,
		"service_id":  serviceID,
		"date":        "2023-09-15",
		"shift":       "morning",
		"description": "first visit",
	})
	require.Equal(t, 404, w.Code)
	assert.Equal(t, "Schedule not found", decodeBody(t, w)["message"])
}

func TestGetScheduleNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, "GET", "/schedules/99", nil)
	require.Equal(t, 404, w.Code)
	assert.Equal(t, "Schedule not found", decodeBody(t, w)["message"])
}

func TestDeleteSchedule(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)
	createTestSchedule(t, r, clientID, serviceID, "2023-09-15", "morning")

	w := doRequest(t, r, "DELETE", "/schedules/1", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Schedule deleted", decodeBody(t, w)["message"])

	gone := doRequest(t, r, "GET", "/schedules/1", nil)
	require.Equal(t, 404, gone.Code)
}

func TestFilterSchedulesByShift(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	createTestSchedule(t, r, clientID, serviceID, "2023-09-15", "evening")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-16", "afternoon")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-17", "morning")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-18", "afternoon")

	w := doRequest(t, r, "GET", "/schedules/filter?shift=afternoon", nil)
	require.Equal(t, 200, w.Code)

	schedules := decodeBody(t, w)["schedules"].([]any)
	require.Len(t, schedules, 2)
	for _, s := range schedules {
		assert.Equal(t, "afternoon", s.(map[string]any)["shift"])
	}
}

func TestFilterSchedulesByDateRange(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	createTestSchedule(t, r, clientID, serviceID, "2023-09-10", "morning")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-15", "morning")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-20", "morning")

	w := doRequest(
		t, r, "GET",
		"/schedules/filter?start_date=2023-09-12&end_date=2023-09-18",
		nil,
	)
	require.Equal(t, 200, w.Code)

	schedules := decodeBody(t, w)["schedules"].([]any)
	require.Len(t, schedules, 1)
	assert.Equal(t, "2023-09-15", schedules[0].(map[string]any)["date"])
}

func TestFilterSchedulesByClient(t *testing.T) {
	r, _ := newTestServer(t)

	firstClient := createTestClient(t, r, "John Doe", "+5588999999999")
	secondClient := createTestClient(t, r, "Jane Doe", "+5588988888888")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	createTestSchedule(t, r, firstClient, serviceID, "2023-09-15", "morning")
	createTestSchedule(t, r, secondClient, serviceID, "2023-09-15", "morning")

	w := doRequest(
		t, r, "GET",
		fmt.Sprintf("/schedules/filter?client_id=%d", secondClient),
		nil,
	)
	require.Equal(t, 200, w.Code)

	schedules := decodeBody(t, w)["schedules"].([]any)
	require.Len(t, schedules, 1)
	client := schedules[0].(map[string]any)["client"].(map[string]any)
	assert.Equal(t, "Jane Doe", client["name"])
}

func TestFilterSchedulesInvalidDateRange(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(
		t, r, "GET",
		"/schedules/filter?start_date=2023-09-18&end_date=2023-09-12",
		nil,
	)
	require.Equal(t, 400, w.Code)
	assert.Equal(
		t,
		"start_date must be <= than end_date",
		decodeBody(t, w)["message"],
	)
}

func TestFilterSchedulesNoPredicates(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	createTestSchedule(t, r, clientID, serviceID, "2023-09-15", "morning")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-16", "evening")

	w := doRequest(t, r, "GET", "/schedules/filter", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeBody(t, w)["schedules"].([]any), 2)
}

func TestListSchedulesPagination(t *testing.T) {
	r, _ := newTestServer(t)

	clientID := createTestClient(t, r, "John Doe", "+5588999999999")
	serviceID := createTestService(t, r, "Cleaning", 99.99)

	createTestSchedule(t, r, clientID, serviceID, "2023-09-15", "morning")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-16", "afternoon")
	createTestSchedule(t, r, clientID, serviceID, "2023-09-17", "evening")

	w := doRequest(t, r, "GET", "/schedules?limit=1&offset=1", nil)
	require.Equal(t, 200, w.Code)

	schedules := decodeBody(t, w)["schedules"].([]any)
	require.Len(t, schedules, 1)
	assert.Equal(t, "2023-09-16", schedules[0].(map[string]any)["date"])
}
