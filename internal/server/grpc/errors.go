package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status. Unknown errors are logged
// and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		// validation messages name the offending field only
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.InvalidArgument, "invalid token")
	case errors.Is(err, common.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "too many attempts")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, "version conflict, reload and retry")
	case errors.Is(err, common.ErrAccountDisabled):
		return status.Error(codes.Unauthenticated, "account is not verified")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "refresh token expired")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrTransport):
		s.logger.Error(ctx, "notification failed", "error", err.Error())
		return status.Error(codes.Unavailable, "notification could not be delivered")
	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
