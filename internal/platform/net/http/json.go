package http

import (
	"net/http"

	"pcaobdash/internal/platform/net/http/bind"
)

// maxJSONBody caps request bodies, a selection is a handful of short lists
const maxJSONBody = 1 << 20

// JSONHandler binds a JSON body into T and wraps the result in the envelope
// an empty body binds the zero value of T, unknown fields are rejected
// a handler may return a Response to take over status and body
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, bind.JSONOptions{
			MaxBytes:        maxJSONBody,
			DisallowUnknown: true,
			AllowEmptyBody:  true,
		})
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without parsing a request body and wraps the result
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
