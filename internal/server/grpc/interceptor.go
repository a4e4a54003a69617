package grpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"github.com/dmitrijs2005/taskplanner/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const actorIDKey ctxKey = "actorID"

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.PlannerService_Ping_FullMethodName:               true,
	pb.PlannerService_Register_FullMethodName:           true,
	pb.PlannerService_Verify_FullMethodName:             true,
	pb.PlannerService_ResendVerification_FullMethodName: true,
	pb.PlannerService_ForgotPassword_FullMethodName:     true,
	pb.PlannerService_ResetPassword_FullMethodName:      true,
	pb.PlannerService_Login_FullMethodName:              true,
	pb.PlannerService_RefreshToken_FullMethodName:       true,
}

// throttledMethods are the anonymous methods counted per client address.
var throttledMethods = map[string]bool{
	pb.PlannerService_Register_FullMethodName:           true,
	pb.PlannerService_Verify_FullMethodName:             true,
	pb.PlannerService_ResendVerification_FullMethodName: true,
	pb.PlannerService_ForgotPassword_FullMethodName:     true,
	pb.PlannerService_ResetPassword_FullMethodName:      true,
	pb.PlannerService_Login_FullMethodName:              true,
}

// methodName strips the service prefix from a full gRPC method.
func methodName(fullMethod string) string {
	return fullMethod[strings.LastIndex(fullMethod, "/")+1:]
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	requestID := incoming(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"request_id", requestID,
		"method", methodName(info.FullMethod),
		"code", code.String(),
		"duration", time.Since(start),
	}
	if code == codes.Internal || code == codes.Unavailable {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request", args...)
	}
	return resp, err
}

// throttleInterceptor limits anonymous token methods per client address.
func (s *GRPCServer) throttleInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.throttle == nil || !throttledMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	if err := s.throttle.Allow(ctx, methodName(info.FullMethod), clientAddress(ctx)); err != nil {
		if errors.Is(err, common.ErrRateLimited) {
			return nil, status.Error(codes.ResourceExhausted, "too many attempts")
		}
		// The throttle fails open when redis is unavailable.
		s.logger.Warn(ctx, "throttle unavailable", "error", err.Error())
	}
	return handler(ctx, req)
}

func clientAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := incoming(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	accountID, err := auth.GetAccountIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			// clients match this message to trigger a refresh
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, actorIDKey, accountID)

	return handler(ctx, req)
}

func incoming(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func actorFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(actorIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}
