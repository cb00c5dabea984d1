package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        decodeTarget
		wantErr     bool
	}{
		{"json", "application/json", `{"name":"Ada","email":"ada@x.com"}`, decodeTarget{"Ada", "ada@x.com"}, false},
		{"json with charset", "application/json; charset=utf-8", `{"name":"Ada"}`, decodeTarget{Name: "Ada"}, false},
		{"no content type", "", `{"name":"Ada"}`, decodeTarget{Name: "Ada"}, false},
		{"form", "application/x-www-form-urlencoded", `name=Ada&email=ada%40x.com`, decodeTarget{"Ada", "ada@x.com"}, false},
		{"bad json", "application/json", `{`, decodeTarget{}, true},
		{"unsupported", "text/plain", `name=Ada`, decodeTarget{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got decodeTarget
			err := Decode(req, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_MultipartForm(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", "Ada"))
	require.NoError(t, writer.WriteField("email", "ada@x.com"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var got decodeTarget
	require.NoError(t, Decode(req, &got))
	assert.Equal(t, decodeTarget{"Ada", "ada@x.com"}, got)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Ada"))
	req.Header.Set("Content-Type", "multipart/form-data")
	assert.Error(t, Decode(req, &got))
}

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	RespondBadRequest(rec, req, "Invalid date")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"Invalid date"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondJSON(rec, req, http.StatusCreated, map[string]bool{"ok": true})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
