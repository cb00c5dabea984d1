package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-booking/pkg/logger"
)

func TestClient_Send(t *testing.T) {
	var got Email
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "re_test", time.Second, logger.NewDiscard())

	id, err := client.Send(context.Background(), &Email{
		From:    "noreply@studio.test",
		To:      []string{"ada@x.com"},
		ReplyTo: "studio@studio.test",
		Subject: "Your chai is booked",
		Text:    "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-1", id)
	assert.Equal(t, []string{"ada@x.com"}, got.To)
	assert.Equal(t, "studio@studio.test", got.ReplyTo)
}

func TestClient_SendErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad key"}`, ErrUnauthorized},
		{"rejected", http.StatusUnprocessableEntity, `{"statusCode":422,"message":"invalid to"}`, ErrRejected},
		{"server error", http.StatusBadGateway, `oops`, ErrUnavailable},
		{"bad body", http.StatusOK, `not json`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "key", time.Second, logger.NewDiscard())
			_, err := client.Send(context.Background(), &Email{To: []string{"a@b.co"}, Subject: "s"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_SendInvalidEmail(t *testing.T) {
	client := NewClient("http://unused", "key", time.Second, logger.NewDiscard())

	_, err := client.Send(context.Background(), &Email{Subject: "no recipient"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestClient_SendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, "key", time.Second, logger.NewDiscard())
	_, err := client.Send(context.Background(), &Email{To: []string{"a@b.co"}, Subject: "s"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
