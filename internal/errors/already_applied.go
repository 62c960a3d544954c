package errors

import "net/http"

var ErrAlreadyApplied = &Exception{
	Message:    "tasker has already applied to this job",
	StatusCode: http.StatusConflict,
}
