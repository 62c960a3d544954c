package errors

import "net/http"

var ErrApplicationNotPending = &Exception{
	Message:    "application is not pending",
	StatusCode: http.StatusConflict,
}
