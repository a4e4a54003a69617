package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (*pb.Project, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.Create(ctx, actorID, req.Title, req.Description)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProject(p), nil
}

func (s *GRPCServer) ListProjects(ctx context.Context, _ *emptypb.Empty) (*pb.ProjectList, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, actorID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.ProjectList{Projects: make([]*pb.Project, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProject(p))
	}
	return out, nil
}

func (s *GRPCServer) GetProject(ctx context.Context, req *pb.ProjectIdRequest) (*pb.Project, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.Get(ctx, actorID, req.ProjectId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProject(p), nil
}

func (s *GRPCServer) UpdateProject(ctx context.Context, req *pb.UpdateProjectRequest) (*pb.Project, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.Update(ctx, actorID, req.ProjectId, req.Title, req.Description)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProject(p), nil
}

func (s *GRPCServer) DeleteProject(ctx context.Context, req *pb.ProjectIdRequest) (*emptypb.Empty, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Delete(ctx, actorID, req.ProjectId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) InviteToProject(ctx context.Context, req *pb.InviteRequest) (*pb.Project, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.Invite(ctx, actorID, req.ProjectId, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProject(p), nil
}
