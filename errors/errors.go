package errors

import (
	"errors"
	"net/http"
)

var (
	BadRequest = HttpError{http.StatusBadRequest, errors.New("bad request")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}
