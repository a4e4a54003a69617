package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	a, err := s.accounts.Register(ctx, services.Registration{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "account_id", a.ID)
	return &pb.RegisterResponse{
		AccountId: a.ID,
		Message:   "Registration successful, check your email to verify the account",
	}, nil
}

func (s *GRPCServer) Verify(ctx context.Context, req *pb.TokenRequest) (*pb.TokenPair, error) {
	tokens, err := s.accounts.Verify(ctx, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPair(tokens), nil
}

// ResendVerification gives an unknown address, a verified account and an
// expired token the answer an exhausted budget gets.
func (s *GRPCServer) ResendVerification(ctx context.Context, req *pb.EmailRequest) (*pb.MessageResponse, error) {
	if err := s.accounts.ResendVerification(ctx, req.Email); err != nil {
		if errors.Is(err, common.ErrorNotFound) ||
			errors.Is(err, common.ErrInvalidToken) ||
			errors.Is(err, common.ErrRateLimited) {
			return nil, status.Error(codes.ResourceExhausted, "too many attempts or token expired")
		}
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Verification email sent"}, nil
}

// ForgotPassword answers an unknown address exactly like an exhausted
// budget, so the call cannot be used to discover which emails are registered.
func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.EmailRequest) (*pb.MessageResponse, error) {
	if err := s.accounts.InitiatePasswordReset(ctx, req.Email); err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrRateLimited) {
			return nil, status.Error(codes.ResourceExhausted, "too many attempts")
		}
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Password reset email sent"}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	if err := s.accounts.ResetPassword(ctx, req.Token, req.Password); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Password has been reset"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPair, error) {
	tokens, err := s.accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPair(tokens), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenPair, error) {
	tokens, err := s.accounts.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPair(tokens), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.RefreshRequest) (*emptypb.Empty, error) {
	if err := s.accounts.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *emptypb.Empty) (*pb.Profile, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.accounts.GetProfile(ctx, actorID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return profile(a), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.Profile, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.accounts.UpdateProfile(ctx, actorID, services.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return profile(a), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.DeleteAccount(ctx, actorID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func tokenPair(t *services.TokenPair) *pb.TokenPair {
	return &pb.TokenPair{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}

func profile(a *models.Account) *pb.Profile {
	return &pb.Profile{
		Id:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
