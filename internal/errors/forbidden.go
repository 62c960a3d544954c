package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "operation not allowed for this user",
	StatusCode: http.StatusForbidden,
}
