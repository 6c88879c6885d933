// Package response provides the uniform result wrapper returned by every
// public loot sheet operation.
package response

import (
	"net/http"
	"sort"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// MsgSuccess is the message carried by successful envelopes
const MsgSuccess = "success"

// Envelope wraps an operation result. Error is true only with a non-2xx Code.
type Envelope[T any] struct {
	Code   int         `json:"code"`
	Msg    string      `json:"msg"`
	Data   T           `json:"data"`
	Error  bool        `json:"error"`
	Reason errors.Code `json:"reason,omitempty"`
}

// OK builds a 200 envelope around data
func OK[T any](data T) *Envelope[T] {
	return &Envelope[T]{
		Code: http.StatusOK,
		Msg:  MsgSuccess,
		Data: data,
	}
}

// Fail builds an error envelope. A 2xx code is coerced to 500.
func Fail[T any](code int, reason errors.Code, msg string) *Envelope[T] {
	if code >= 200 && code < 300 {
		code = http.StatusInternalServerError
	}
	return &Envelope[T]{
		Code:   code,
		Msg:    msg,
		Error:  true,
		Reason: reason,
	}
}

// FromError builds an error envelope whose code follows the error code
func FromError[T any](err error) *Envelope[T] {
	code := errors.GetCode(err)
	if code == errors.CodeOK {
		code = errors.CodeInternal
	}
	return Fail[T](StatusFor(code), code, errors.GetMessage(err))
}

// StatusFor maps an error code to an envelope status. Missing tokens and
// missing privilege both surface as 403.
func StatusFor(code errors.Code) int {
	switch code {
	case errors.CodeNotFound, errors.CodePermissionDenied:
		return http.StatusForbidden
	default:
		return code.HTTPStatus()
	}
}

// Succeeded reports whether the envelope carries a result
func (e *Envelope[T]) Succeeded() bool {
	return e != nil && !e.Error
}

// Err returns the envelope failure as an *errors.Error, nil on success
func (e *Envelope[T]) Err() error {
	if e.Succeeded() {
		return nil
	}
	if e == nil {
		return errors.Internal("missing response")
	}
	reason := e.Reason
	if reason == "" {
		reason = errors.CodeInternal
	}
	return errors.New(reason, e.Msg)
}

// Batch holds per-token envelopes keyed by token UUID
type Batch[T any] map[string]*Envelope[T]

// Failed returns the sorted keys of failed entries
func (b Batch[T]) Failed() []string {
	var keys []string
	for k, env := range b {
		if !env.Succeeded() {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the sorted entry keys
func (b Batch[T]) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
