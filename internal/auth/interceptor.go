package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// AuthorizationHeader carries the bearer token in metadata and HTTP headers
const AuthorizationHeader = "authorization"

// public methods are served without a token
var publicPrefixes = []string{
	"/grpc.health.v1.Health/",
	"/grpc.reflection.",
}

func isPublic(fullMethod string) bool {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(fullMethod, p) {
			return true
		}
	}
	return false
}

// UnaryServerInterceptor attaches the caller claims to the request context
func (i *Issuer) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublic(info.FullMethod) {
			return handler(ctx, req)
		}

		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(AuthorizationHeader); len(values) > 0 {
				header = values[0]
			}
		}

		claims, err := i.ParseBearer(header)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return handler(WithClaims(ctx, claims), req)
	}
}

// GinMiddleware rejects requests without a valid bearer token
func (i *Issuer) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := i.ParseBearer(c.GetHeader(AuthorizationHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":   http.StatusUnauthorized,
				"msg":    errors.GetMessage(err),
				"error":  true,
				"reason": errors.CodeUnauthenticated,
			})
			return
		}
		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// OutgoingContext returns ctx carrying token for gRPC calls
func OutgoingContext(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, "Bearer "+token)
}
