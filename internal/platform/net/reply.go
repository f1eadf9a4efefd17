package net

import (
	"net/http"

	perr "pcaobdash/internal/platform/errors"
)

// Wire is the JSON envelope; data and error are mutually exclusive
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Data wraps a successful payload under status
func Data(status int, data any, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Error maps err to its status and envelope; a nil err is an empty 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return http.StatusOK, Data(http.StatusOK, nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}
