package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/boggle-go/internal/model"
)

// Error codes reported in the "code" field of an error body
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeUnknownCube         = "UNKNOWN_CUBE"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is the body of an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope every failed request is answered with
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Problem is an error that already knows how it is reported over HTTP
type Problem struct {
	Status int
	Body   APIError
}

func (p *Problem) Error() string {
	return p.Body.Message
}

func newProblem(status int, code, message string) *Problem {
	return &Problem{Status: status, Body: APIError{Code: code, Message: message}}
}

// NewInvalidRequestError reports a malformed request
func NewInvalidRequestError(message string) error {
	return newProblem(http.StatusBadRequest, CodeInvalidRequest, message)
}

// NewInternalError reports an unexpected server fault without detail
func NewInternalError() error {
	return newProblem(http.StatusInternalServerError, CodeInternalError, "Internal server error")
}

// domainErrors maps model sentinels onto problems. An empty message means
// the wrapped error's own text is passed through.
var domainErrors = []struct {
	target  error
	status  int
	code    string
	message string
}{
	{model.ErrGameNotFound, http.StatusNotFound, CodeGameNotFound, "Game not found"},
	{model.ErrUnknownCube, http.StatusBadRequest, CodeUnknownCube, ""},
	{model.ErrInvalidPosition, http.StatusBadRequest, CodeInvalidPosition, ""},
	{model.ErrDictionaryNotLoaded, http.StatusServiceUnavailable, CodeDictionaryNotLoaded, "Dictionary is not loaded"},
}

// From classifies err. Unrecognised errors become internal errors so their
// text never leaks to clients.
func From(err error) *Problem {
	var p *Problem
	if errors.As(err, &p) {
		return p
	}
	for _, d := range domainErrors {
		if !errors.Is(err, d.target) {
			continue
		}
		msg := d.message
		if msg == "" {
			msg = err.Error()
		}
		return newProblem(d.status, d.code, msg)
	}
	return NewInternalError().(*Problem)
}

// WriteError classifies err and writes it as a JSON error response
func WriteError(w http.ResponseWriter, err error) {
	p := From(err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: p.Body})
}
