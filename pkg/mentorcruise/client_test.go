package mentorcruise_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
	"github.com/getmentor/mentor-aggregator/pkg/mentorcruise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListMentors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mentors", r.URL.Path)
		assert.Equal(t, "mc-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "python", r.URL.Query().Get("skills"))
		assert.Equal(t, "1", r.URL.Query().Get("available_only"))
		assert.Empty(t, r.URL.Query().Get("country"))
		_, _ = w.Write([]byte(`{"results":[{"id":"7","first_name":"Ada","last_name":"Lovelace","price_per_hour":120}]}`))
	}))
	defer srv.Close()

	client := mentorcruise.NewClient(srv.URL, "mc-key", httpclient.NewStandardClient(0))
	mentors, err := client.ListMentors(context.Background(), mentorcruise.ListParams{Skills: "python", OnlyAvailable: true})

	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "Ada Lovelace", mentors[0].FullName())
	require.NotNil(t, mentors[0].PricePerHour)
	assert.Equal(t, 120.0, *mentors[0].PricePerHour)
}

func TestClient_SendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mentors/7/messages", r.URL.Path)

		var msg mentorcruise.Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "ada@example.com", msg.Email)

		_, _ = w.Write([]byte(`{"message_id":"mc-msg-9"}`))
	}))
	defer srv.Close()

	client := mentorcruise.NewClient(srv.URL, "k", httpclient.NewStandardClient(0))
	receipt, err := client.SendMessage(context.Background(), "7", mentorcruise.Message{Body: "Hello", Email: "ada@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "mc-msg-9", receipt.MessageID)
}

func TestClient_ListMentors_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":`))
	}))
	defer srv.Close()

	client := mentorcruise.NewClient(srv.URL, "k", httpclient.NewStandardClient(0))
	_, err := client.ListMentors(context.Background(), mentorcruise.ListParams{})
	require.Error(t, err)
}
