package web

import "errors"

type response struct {
	Data   any      `json:"data,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func newResponse(data any) response {
	return response{Data: data}
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func errResponse(err error) response {
	var r response
	for _, err := range unwrap(err) {
		r.Errors = append(r.Errors, err.Error())
	}
	return r
}
