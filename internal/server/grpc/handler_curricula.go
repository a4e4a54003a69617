package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) CreateCurriculum(ctx context.Context, req *pb.CurriculumRequest) (*pb.Curriculum, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.curricula.Create(ctx, actorID, req.Title)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toCurriculum(c), nil
}

func (s *GRPCServer) GetCurriculum(ctx context.Context, _ *emptypb.Empty) (*pb.Curriculum, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.curricula.Current(ctx, actorID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toCurriculum(c), nil
}

func (s *GRPCServer) UpdateCurriculum(ctx context.Context, req *pb.CurriculumRequest) (*pb.Curriculum, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.curricula.Update(ctx, actorID, req.Title)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toCurriculum(c), nil
}

func (s *GRPCServer) DeleteCurriculum(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.curricula.Delete(ctx, actorID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) AddTaskToCurriculum(ctx context.Context, req *pb.CurriculumTaskRequest) (*pb.Association, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	a, err := s.curricula.AddTask(ctx, actorID, req.TaskId, start, end)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAssociation(a), nil
}

func (s *GRPCServer) UpdateCurriculumTask(ctx context.Context, req *pb.CurriculumTaskRequest) (*pb.Association, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	a, err := s.curricula.UpdateTaskDates(ctx, actorID, req.TaskId, start, end)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAssociation(a), nil
}

func (s *GRPCServer) RemoveTaskFromCurriculum(ctx context.Context, req *pb.TaskIdRequest) (*emptypb.Empty, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.curricula.RemoveTask(ctx, actorID, req.TaskId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}
