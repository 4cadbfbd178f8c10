package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	taskRepo task.TaskRepository
}

func NewTaskService(taskRepo task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.DueDate)
		dueDate = &parsed
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Project:     req.Project,
		AssigneeID:  req.AssigneeID,
		Status:      task.StatusTodo,
		DueDate:     dueDate,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	tk, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return mapToResponse(tk), nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter task.Filter) (task.ListTasksResponse, error) {
	tasks, totalCount, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return task.ListTasksResponse{}, err
	}

	data := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		data = append(data, mapToResponse(t))
	}
	return task.ListTasksResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	tk, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.Title != nil {
		tk.Title = *req.Title
	}
	if req.Description != nil {
		tk.Description = req.Description
	}
	if req.Project != nil {
		tk.Project = req.Project
	}
	if req.AssigneeID != nil {
		tk.AssigneeID = *req.AssigneeID
	}
	if req.Status != nil {
		tk.Status = task.Status(*req.Status)
	}
	if req.DueDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.DueDate)
		tk.DueDate = &parsed
	}

	updated, err := s.taskRepo.Update(ctx, tk)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func mapToResponse(t task.Task) task.TaskResponse {
	var dueDate *string
	if t.DueDate != nil {
		str := t.DueDate.Format("2006-01-02")
		dueDate = &str
	}
	return task.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Project:      t.Project,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		Status:       string(t.Status),
		DueDate:      dueDate,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}
