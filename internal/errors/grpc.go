package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError turns err into a status error. Metadata rides along as a
// structpb.Struct detail when every value is representable; otherwise it is
// left off. Errors that already are statuses pass through.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var coded *Error
	if !As(err, &coded) {
		return status.Error(classify(err).GRPCCode(), err.Error())
	}

	st := status.New(coded.Code.GRPCCode(), coded.Message)
	if len(coded.Meta) == 0 {
		return st.Err()
	}
	detail, convErr := structpb.NewStruct(coded.Meta)
	if convErr != nil {
		return st.Err()
	}
	if withDetail, detailErr := st.WithDetails(detail); detailErr == nil {
		st = withDetail
	}
	return st.Err()
}

// FromGRPCError is the client side of ToGRPCError. Errors that are not
// statuses come back unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.OK {
		return nil
	}

	coded := New(codeForGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			coded.Meta = meta.AsMap()
			break
		}
	}
	return coded
}
