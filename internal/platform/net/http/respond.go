// Package http provides helpers for writing JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	"mime"
	stdhttp "net/http"
	"strconv"

	pnet "pcaobdash/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers hand back
// Body is enveloped, Raw is written as is (images, downloads)
type Response struct {
	Status      int
	Body        any
	Header      stdhttp.Header
	Raw         []byte
	ContentType string
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	reqID := pnet.RequestID(r.Context())

	// an error body wins over raw bytes
	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Error(err, reqID)
		JSON(w, status, env)
		return
	}

	if resp.Raw != nil {
		ct := resp.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Content-Length", strconv.Itoa(len(resp.Raw)))
		w.WriteHeader(status)
		_, _ = w.Write(resp.Raw)
		return
	}

	JSON(w, status, pnet.Data(status, resp.Body, reqID))
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Blob returns a 200 response carrying raw bytes of the given content type
func Blob(contentType string, b []byte) Response {
	if b == nil {
		b = []byte{}
	}
	return Response{Status: stdhttp.StatusOK, Raw: b, ContentType: contentType}
}

// Attachment is a Blob the browser saves as filename
func Attachment(filename, contentType string, b []byte) Response {
	resp := Blob(contentType, b)
	resp.Header = stdhttp.Header{}
	resp.Header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return resp
}
