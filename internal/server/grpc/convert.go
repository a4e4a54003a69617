package grpc

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

// dateLayout is the wire format of calendar dates.
const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date like 2024-01-31", common.ErrorValidation, field)
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func toTask(t *models.Task) *pb.Task {
	return &pb.Task{
		Id:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Creator:       t.Creator,
		StartDate:     formatDate(t.StartDate),
		EndDate:       formatDate(t.EndDate),
		Status:        string(t.Status),
		ProjectId:     t.ProjectID,
		AssigneeIds:   t.AssigneeIDs,
		CurriculumIds: t.CurriculumIDs(),
		Version:       t.Version,
	}
}

func toAssociation(a *models.Association) *pb.Association {
	return &pb.Association{
		Id:           a.ID,
		TaskId:       a.TaskID,
		CurriculumId: a.CurriculumID,
		StartDate:    formatDate(a.StartDate),
		EndDate:      formatDate(a.EndDate),
		Version:      a.Version,
	}
}

func toCurriculum(c *models.Curriculum) *pb.Curriculum {
	out := &pb.Curriculum{Id: c.ID, Title: c.Title, Tasks: make([]*pb.Association, 0, len(c.Associations))}
	for _, a := range c.Associations {
		out.Tasks = append(out.Tasks, toAssociation(a))
	}
	return out
}

func toProject(p *models.Project) *pb.Project {
	return &pb.Project{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		OwnerId:     p.OwnerID,
		MemberIds:   p.MemberIDs,
	}
}
