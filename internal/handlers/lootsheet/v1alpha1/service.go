package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "lootsheet.api.v1alpha1.LootSheetService"

// LootSheetServiceServer is implemented by Handler
type LootSheetServiceServer interface {
	Call(ctx context.Context, method string, body []byte) (*Reply, error)
}

var _ LootSheetServiceServer = (*Handler)(nil)

// FullMethod returns the gRPC path of method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ServiceDesc describes the service with one unary method per operation
func ServiceDesc() *grpc.ServiceDesc {
	desc := &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*LootSheetServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "lootsheet/api/v1alpha1/lootsheet.proto",
	}
	for _, name := range Methods() {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    unaryHandler(name),
		})
	}
	return desc
}

// RegisterLootSheetServiceServer registers srv on s
func RegisterLootSheetServiceServer(s grpc.ServiceRegistrar, srv LootSheetServiceServer) {
	s.RegisterService(ServiceDesc(), srv)
}

func unaryHandler(method string) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}

		invoke := func(ctx context.Context, req any) (any, error) {
			return serve(ctx, srv.(LootSheetServiceServer), method, req.(*structpb.Struct))
		}
		if interceptor == nil {
			return invoke(ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		return interceptor(ctx, in, info, invoke)
	}
}

func serve(ctx context.Context, srv LootSheetServiceServer, method string, in *structpb.Struct) (*structpb.Struct, error) {
	body, err := protojson.Marshal(in)
	if err != nil {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("malformed request: %v", err))
	}

	reply, err := srv.Call(ctx, method, body)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := toStruct(reply)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode reply")
	}
	out := new(structpb.Struct)
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode reply")
	}
	return out, nil
}

// Client calls the service over a gRPC connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client on conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes method with req encoded as JSON and decodes the reply into out
func (c *Client) Call(ctx context.Context, method string, req any, out any) error {
	in := new(structpb.Struct)
	if req != nil {
		var err error
		if in, err = toStruct(req); err != nil {
			return err
		}
	}

	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, reply); err != nil {
		return errors.FromGRPCError(err)
	}

	if out == nil {
		return nil
	}
	data, err := protojson.Marshal(reply)
	if err != nil {
		return errors.Wrap(err, "failed to decode reply")
	}
	return json.Unmarshal(data, out)
}
