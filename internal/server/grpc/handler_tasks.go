package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"github.com/dmitrijs2005/taskplanner/internal/server/services"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.Task, error) {
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

	task, err := s.tasks.Create(ctx, actorID, services.NewTask{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     start,
		EndDate:       end,
		Status:        req.Status,
		ProjectID:     req.ProjectId,
		CurriculumIDs: req.CurriculumIds,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Task created", "task_id", task.ID)
	return toTask(task), nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, _ *emptypb.Empty) (*pb.TaskList, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, actorID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.TaskList{Tasks: make([]*pb.Task, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, toTask(t))
	}
	return out, nil
}

func (s *GRPCServer) GetTask(ctx context.Context, req *pb.TaskIdRequest) (*pb.Task, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.Get(ctx, actorID, req.TaskId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toTask(task), nil
}

func (s *GRPCServer) UpdateTask(ctx context.Context, req *pb.UpdateTaskRequest) (*pb.Task, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	start, err := parseOptionalDate("startDate", req.StartDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	end, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	task, err := s.tasks.Update(ctx, actorID, req.TaskId, services.TaskUpdate{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     start,
		EndDate:       end,
		Status:        req.Status,
		ProjectID:     req.ProjectId,
		CurriculumIDs: req.CurriculumIds,
		AssigneeIDs:   req.AssigneeIds,
		Version:       req.Version,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toTask(task), nil
}

func (s *GRPCServer) UpdateTaskStatus(ctx context.Context, req *pb.UpdateTaskStatusRequest) (*pb.Task, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.UpdateStatus(ctx, actorID, req.TaskId, req.Status)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toTask(task), nil
}

func (s *GRPCServer) AssignTaskToProject(ctx context.Context, req *pb.AssignTaskRequest) (*pb.Task, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.AssignToProject(ctx, actorID, req.TaskId, req.ProjectId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toTask(task), nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *pb.TaskIdRequest) (*emptypb.Empty, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Delete(ctx, actorID, req.TaskId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}
