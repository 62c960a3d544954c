package errors

import "net/http"

var ErrEmailInUse = &Exception{
	Message:    "email already in use",
	StatusCode: http.StatusConflict,
}
