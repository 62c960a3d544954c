package errors

import "net/http"

var ErrJobNotCompleted = &Exception{
	Message:    "job is not completed",
	StatusCode: http.StatusConflict,
}
