package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"todoapp/internal/dto"
	"todoapp/internal/model"
)

// TaskStore is the slice of the task repository the service programs
// against.
type TaskStore interface {
	FindAll(ctx context.Context) []model.Task
	FindDone(ctx context.Context) []model.Task
	FindNew(ctx context.Context) []model.Task
	FindByID(ctx context.Context, id uint) (model.Task, bool)
	SetDoneByID(ctx context.Context, id uint) bool
	DeleteByID(ctx context.Context, id uint) bool
	Update(ctx context.Context, task *model.Task) bool
	Save(ctx context.Context, task *model.Task) bool
}

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (model.User, bool)
}

type PriorityFinder interface {
	FindByID(ctx context.Context, id uint) (model.Priority, bool)
}

type CategoryLister interface {
	FindAll(ctx context.Context) []model.Category
}

// TaskService converts between stored tasks and their display
// representation. Timestamps come out of the store in UTC and are rendered
// in the viewer's configured zone.
type TaskService struct {
	store      TaskStore
	users      UserFinder
	priorities PriorityFinder
	categories CategoryLister
}

func NewTaskService(store TaskStore, users UserFinder, priorities PriorityFinder, categories CategoryLister) *TaskService {
	return &TaskService{store: store, users: users, priorities: priorities, categories: categories}
}

func (s *TaskService) FindAll(ctx context.Context, viewer model.User) []dto.Task {
	return mapTasks(s.store.FindAll(ctx), viewer)
}

func (s *TaskService) FindDone(ctx context.Context, viewer model.User) []dto.Task {
	return mapTasks(s.store.FindDone(ctx), viewer)
}

func (s *TaskService) FindNew(ctx context.Context, viewer model.User) []dto.Task {
	return mapTasks(s.store.FindNew(ctx), viewer)
}

func (s *TaskService) FindByID(ctx context.Context, id uint, viewer model.User) (dto.Task, bool) {
	task, ok := s.store.FindByID(ctx, id)
	if !ok {
		return dto.Task{}, false
	}
	return taskToDTO(task, viewer), true
}

func (s *TaskService) SetDoneByID(ctx context.Context, id uint) bool {
	return s.store.SetDoneByID(ctx, id)
}

func (s *TaskService) DeleteByID(ctx context.Context, id uint) bool {
	return s.store.DeleteByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, t dto.Task) bool {
	task := s.dtoToTask(ctx, t)
	return s.store.Update(ctx, &task)
}

func (s *TaskService) Save(ctx context.Context, t dto.Task) bool {
	task := s.dtoToTask(ctx, t)
	return s.store.Save(ctx, &task)
}

// mapTasks converts a collection preserving the store's ordering.
func mapTasks(tasks []model.Task, viewer model.User) []dto.Task {
	out := make([]dto.Task, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToDTO(task, viewer))
	}
	return out
}

// taskToDTO flattens relations and renders the creation time in the
// viewer's zone. A missing priority becomes the (0, "") placeholder; the
// category id list keeps relation order while the display string joins the
// names sorted.
func taskToDTO(task model.Task, viewer model.User) dto.Task {
	var priorityID uint
	var priorityName string
	if task.Priority != nil {
		priorityID = task.Priority.ID
		priorityName = task.Priority.Name
	}

	ids := make([]uint, 0, len(task.Categories))
	names := make([]string, 0, len(task.Categories))
	for _, c := range task.Categories {
		ids = append(ids, c.ID)
		names = append(names, c.Name)
	}
	sort.Strings(names)

	return dto.Task{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Created:      task.Created.In(viewerLocation(viewer)),
		Done:         task.Done,
		UserID:       task.UserID,
		UserName:     task.User.Name,
		PriorityID:   priorityID,
		PriorityName: priorityName,
		CategoryIDs:  ids,
		Categories:   strings.Join(names, ", "),
	}
}

// viewerLocation resolves the viewer's configured zone, falling back to
// the host default when unset or unrecognized.
func viewerLocation(viewer model.User) *time.Location {
	if viewer.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(viewer.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// dtoToTask resolves the flattened references back to entities. An unknown
// user or priority leaves the reference unset rather than failing the
// conversion — callers validate the owner before saving. Unknown category
// ids are dropped without error, preserving the system's long-standing
// behavior (see DESIGN.md).
func (s *TaskService) dtoToTask(ctx context.Context, t dto.Task) model.Task {
	task := model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Created:     t.Created.UTC(),
		Done:        t.Done,
	}

	if user, ok := s.users.FindByID(ctx, t.UserID); ok {
		task.UserID = user.ID
		task.User = user
	}
	if t.PriorityID != 0 {
		if priority, ok := s.priorities.FindByID(ctx, t.PriorityID); ok {
			task.PriorityID = &priority.ID
			task.Priority = &priority
		}
	}

	byID := make(map[uint]model.Category)
	for _, c := range s.categories.FindAll(ctx) {
		byID[c.ID] = c
	}
	for _, id := range t.CategoryIDs {
		if c, ok := byID[id]; ok {
			task.Categories = append(task.Categories, c)
		}
	}

	return task
}
