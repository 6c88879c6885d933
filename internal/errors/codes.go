package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error. The string form is what the envelope and the
// gRPC status messages carry.
type Code string

const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

type mapping struct {
	http int
	grpc codes.Code
}

// Unknown codes fall back to CodeInternal's row.
var mappings = map[Code]mapping{
	CodeOK:                 {http.StatusOK, codes.OK},
	CodeCanceled:           {http.StatusRequestTimeout, codes.Canceled},
	CodeInvalidArgument:    {http.StatusBadRequest, codes.InvalidArgument},
	CodeDeadlineExceeded:   {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	CodeNotFound:           {http.StatusNotFound, codes.NotFound},
	CodeAlreadyExists:      {http.StatusConflict, codes.AlreadyExists},
	CodePermissionDenied:   {http.StatusForbidden, codes.PermissionDenied},
	CodeFailedPrecondition: {http.StatusPreconditionFailed, codes.FailedPrecondition},
	CodeUnimplemented:      {http.StatusNotImplemented, codes.Unimplemented},
	CodeInternal:           {http.StatusInternalServerError, codes.Internal},
	CodeUnavailable:        {http.StatusServiceUnavailable, codes.Unavailable},
	CodeUnauthenticated:    {http.StatusUnauthorized, codes.Unauthenticated},
}

func (c Code) String() string {
	return string(c)
}

func (c Code) mapping() mapping {
	if m, ok := mappings[c]; ok {
		return m
	}
	return mappings[CodeInternal]
}

// HTTPStatus is the plain HTTP status for the code. The lootsheet envelope
// overrides a few of these, see response.StatusFor.
func (c Code) HTTPStatus() int {
	return c.mapping().http
}

// GRPCCode is the status code the handlers return for c
func (c Code) GRPCCode() codes.Code {
	return c.mapping().grpc
}

// codeForGRPC reverses GRPCCode. gRPC codes without a counterpart become
// CodeInternal.
func codeForGRPC(gc codes.Code) Code {
	for code, m := range mappings {
		if m.grpc == gc {
			return code
		}
	}
	return CodeInternal
}
