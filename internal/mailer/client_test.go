package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendApplication(t *testing.T) {
	var received ApplicationMail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-volunteer-application", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.SendApplication(context.Background(), sampleMail())

	require.NoError(t, err)
	assert.Equal(t, "lena@example.com", received.Email)
}

func TestClientSendApplication_RelayRefuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Failed to send email"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.SendApplication(context.Background(), sampleMail())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to send email")
}

func TestClientSendApplication_RelayDown(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	err := client.SendApplication(context.Background(), sampleMail())

	assert.Error(t, err)
}
