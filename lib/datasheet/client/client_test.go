package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"candidate-dashboard/models"
	datasheetapimodels "candidate-dashboard/models/api/datasheet"

	"github.com/stretchr/testify/require"
)

func getTestClient(handler http.HandlerFunc) (impl, *httptest.Server) {
	server := httptest.NewServer(handler)
	return impl{
		host:       server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}, server
}

func TestGetCandidates(t *testing.T) {
	t.Run(`parses roster payload`, func(t *testing.T) {
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "GET", r.Method)
			require.Equal(t, candidatesPath, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":"1","fullName":"Ravi Kumar","batch":"Batch March 2024","yearOfCompletion":"2024","whatsappMsg":"sent","phoneEnquiry":"done","online":"attended","program":"attended"},
				{"id":"2","fullName":"Priya S","batch":"","yearOfCompletion":2023,"whatsappMsg":"pending","phoneEnquiry":"not done","online":"absent","program":"ghosted"}
			]`))
		})
		defer server.Close()

		list, err := i.GetCandidates(context.TODO())
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "1", list[0].ID)
		require.Equal(t, models.WhatsappSent, list[0].WhatsappMsg)
		require.Equal(t, "2024", list[0].YearOfCompletion)
		// числовой год остаётся числом, без нормализации к строке
		require.Equal(t, float64(2023), list[1].YearOfCompletion)
	})

	t.Run(`non-2xx is a load failure`, func(t *testing.T) {
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"sheet unavailable"}`))
		})
		defer server.Close()

		_, err := i.GetCandidates(context.TODO())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "sheet unavailable")
	})

	t.Run(`transport failure is a load failure`, func(t *testing.T) {
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		_, err := i.GetCandidates(context.TODO())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "табличный сервис недоступен")
	})
}

func TestUpdateCandidate(t *testing.T) {
	t.Run(`sends id, field and value`, func(t *testing.T) {
		var got datasheetapimodels.UpdateCandidateRequest
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "POST", r.Method)
			require.Equal(t, updatePath, r.URL.Path)
			require.Nil(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		})
		defer server.Close()

		err := i.UpdateCandidate(context.TODO(), datasheetapimodels.UpdateCandidateRequest{
			ID:    "7",
			Field: models.FieldPhoneEnquiry,
			Value: "done",
		})
		require.Nil(t, err)
		require.Equal(t, "7", got.ID)
		require.Equal(t, models.FieldPhoneEnquiry, got.Field)
		require.Equal(t, "done", got.Value)
	})

	t.Run(`non-2xx is an update failure`, func(t *testing.T) {
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer server.Close()

		err := i.UpdateCandidate(context.TODO(), datasheetapimodels.UpdateCandidateRequest{
			ID:    "7",
			Field: models.FieldPhoneEnquiry,
			Value: "done",
		})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "502")
	})
}

func TestSendReminders(t *testing.T) {
	t.Run(`sends exactly one dispatch request`, func(t *testing.T) {
		calls := 0
		var got datasheetapimodels.SendRemindersRequest
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {
			calls++
			require.Equal(t, remindersPath, r.URL.Path)
			require.Nil(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		})
		defer server.Close()

		err := i.SendReminders(context.TODO(), datasheetapimodels.SendRemindersRequest{
			Days:  7,
			Batch: "Batch March 2024",
		})
		require.Nil(t, err)
		require.Equal(t, 1, calls)
		require.Equal(t, 7, got.Days)
		require.Equal(t, "Batch March 2024", got.Batch)
	})

	t.Run(`non-2xx is a dispatch failure`, func(t *testing.T) {
		i, server := getTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		defer server.Close()

		err := i.SendReminders(context.TODO(), datasheetapimodels.SendRemindersRequest{
			Days:  3,
			Batch: "Batch June 2024",
		})
		require.NotNil(t, err)
	})
}
