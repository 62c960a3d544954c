package errors

import "net/http"

var ErrFileNotFound = &Exception{
	Message:    "file not found",
	StatusCode: http.StatusNotFound,
}
