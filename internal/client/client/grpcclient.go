package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PlannerServiceClient
	dialOpts    []grpc.DialOption

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(t *pb.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == nil {
		s.accessToken, s.refreshToken = "", ""
		return
	}
	s.accessToken, s.refreshToken = t.GetAccessToken(), t.GetRefreshToken()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refresh == "" {
			return err
		}

		pair := &pb.TokenPair{}
		if err := invoker(ctx, pb.PlannerService_RefreshToken_FullMethodName, &pb.RefreshRequest{RefreshToken: refresh}, pair, cc, opts...); err != nil {
			return err
		}
		s.setTokens(pair)

		// retry once with the fresh access token
		return invoker(withAccessToken(ctx, pair.GetAccessToken()), method, req, reply, cc, opts...)
	}

	return nil
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPlannerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Verify confirms the emailed token and keeps the session it opens.
func (s *GRPCClient) Verify(ctx context.Context, token string) error {
	resp, err := s.client.Verify(ctx, &pb.TokenRequest{Token: token})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp)
	return nil
}

func (s *GRPCClient) ResendVerification(ctx context.Context, email string) error {
	_, err := s.client.ResendVerification(ctx, &pb.EmailRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.client.ForgotPassword(ctx, &pb.EmailRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, password string) error {
	_, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp)

	return nil

}

// Logout revokes the refresh token on the server and forgets the session
// locally even if the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()
	defer s.setTokens(nil)
	if refresh == "" {
		return nil
	}
	_, err := s.client.Logout(ctx, &pb.RefreshRequest{RefreshToken: refresh})
	return s.mapError(err)
}

func (s *GRPCClient) Profile(ctx context.Context) (*pb.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.Task, error) {
	resp, err := s.client.CreateTask(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListTasks(ctx context.Context) ([]*pb.Task, error) {
	resp, err := s.client.ListTasks(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetTasks(), nil
}

func (s *GRPCClient) UpdateTaskStatus(ctx context.Context, taskID, taskStatus string) (*pb.Task, error) {
	resp, err := s.client.UpdateTaskStatus(ctx, &pb.UpdateTaskStatusRequest{TaskId: taskID, Status: taskStatus})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) DeleteTask(ctx context.Context, taskID string) error {
	_, err := s.client.DeleteTask(ctx, &pb.TaskIdRequest{TaskId: taskID})
	return s.mapError(err)
}

func (s *GRPCClient) CreateCurriculum(ctx context.Context, title string) (*pb.Curriculum, error) {
	resp, err := s.client.CreateCurriculum(ctx, &pb.CurriculumRequest{Title: title})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Curriculum(ctx context.Context) (*pb.Curriculum, error) {
	resp, err := s.client.GetCurriculum(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) AddToCurriculum(ctx context.Context, req *pb.CurriculumTaskRequest) (*pb.Association, error) {
	resp, err := s.client.AddTaskToCurriculum(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RemoveFromCurriculum(ctx context.Context, taskID string) error {
	_, err := s.client.RemoveTaskFromCurriculum(ctx, &pb.TaskIdRequest{TaskId: taskID})
	return s.mapError(err)
}

func (s *GRPCClient) CreateProject(ctx context.Context, title, description string) (*pb.Project, error) {
	resp, err := s.client.CreateProject(ctx, &pb.CreateProjectRequest{Title: title, Description: description})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListProjects(ctx context.Context) ([]*pb.Project, error) {
	resp, err := s.client.ListProjects(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProjects(), nil
}

func (s *GRPCClient) Invite(ctx context.Context, projectID, username string) (*pb.Project, error) {
	resp, err := s.client.InviteToProject(ctx, &pb.InviteRequest{ProjectId: projectID, Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// mapError turns transport-level failures into ErrUnavailable and
// authentication failures into ErrUnauthorized. Other statuses are wrapped
// so their message stays visible.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return errors.New(st.Message())
	}
}
