package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ajg/form"
	"github.com/go-chi/render"
)

const (
	msgInternalError = "internal server error"

	// maxMultipartMemory лимит памяти для multipart/form-data (поля формы небольшие)
	maxMultipartMemory = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

var errEmptyBody = errors.New("handlers: empty request body")

// Decode разбирает тело запроса: JSON, application/x-www-form-urlencoded
// или multipart/form-data. Без Content-Type тело читается как JSON.
func Decode(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}

	contentType := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
	switch {
	case contentType == "":
		return render.DecodeJSON(r.Body, v)
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return err
		}
		return form.DecodeValues(v, r.PostForm)
	default:
		return render.Decode(r, v)
	}
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	render.Status(r, status)
	if data == nil {
		render.NoContent(w, r)
		return
	}
	render.JSON(w, r, data)
}

// RespondError отправляет {"error": message} с указанным статусом
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	RespondError(w, r, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, r *http.Request, message string) {
	RespondError(w, r, http.StatusNotFound, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, http.StatusInternalServerError, msgInternalError)
}
