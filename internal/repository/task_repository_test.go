package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todoapp/internal/model"
)

type taskFixture struct {
	db         *gorm.DB
	tasks      *TaskRepository
	users      []model.User
	priorities []model.Priority
	categories []model.Category
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	db := newTestDB(t)
	gw := NewGateway(db)

	f := &taskFixture{db: db, tasks: NewTaskRepository(gw)}

	f.users = []model.User{
		{Name: "Ivan", Login: "ivan", Password: "pw1", Timezone: "UTC"},
		{Name: "Petr", Login: "petr", Password: "pw2"},
	}
	for i := range f.users {
		require.NoError(t, db.Create(&f.users[i]).Error)
	}

	f.priorities = []model.Priority{
		{Name: "urgent", Position: 1},
		{Name: "normal", Position: 2},
	}
	for i := range f.priorities {
		require.NoError(t, db.Create(&f.priorities[i]).Error)
	}

	f.categories = []model.Category{{Name: "home"}, {Name: "work"}}
	for i := range f.categories {
		require.NoError(t, db.Create(&f.categories[i]).Error)
	}

	return f
}

func (f *taskFixture) newTask(title string, created time.Time, done bool) model.Task {
	return model.Task{
		Title:       title,
		Description: "descr " + title,
		Created:     created,
		Done:        done,
		UserID:      f.users[0].ID,
		PriorityID:  &f.priorities[0].ID,
		Categories:  f.categories,
	}
}

func TestFindAllOrdersByCreationTime(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	third := f.newTask("third", base.Add(2*time.Hour), false)
	first := f.newTask("first", base, false)
	second := f.newTask("second", base.Add(time.Hour), true)
	for _, task := range []*model.Task{&third, &first, &second} {
		require.True(t, f.tasks.Save(ctx, task))
	}

	all := f.tasks.FindAll(ctx)
	require.Len(t, all, 3)
	require.Equal(t, "first", all[0].Title)
	require.Equal(t, "second", all[1].Title)
	require.Equal(t, "third", all[2].Title)
}

func TestFindDoneAndFindNewPartitionTasks(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	open := f.newTask("open", base, false)
	closed := f.newTask("closed", base.Add(time.Minute), true)
	require.True(t, f.tasks.Save(ctx, &open))
	require.True(t, f.tasks.Save(ctx, &closed))

	done := f.tasks.FindDone(ctx)
	require.Len(t, done, 1)
	require.Equal(t, "closed", done[0].Title)

	fresh := f.tasks.FindNew(ctx)
	require.Len(t, fresh, 1)
	require.Equal(t, "open", fresh[0].Title)
}

func TestFindByIDLoadsRelations(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := f.newTask("with relations", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), false)
	require.True(t, f.tasks.Save(ctx, &task))
	require.NotZero(t, task.ID)

	loaded, found := f.tasks.FindByID(ctx, task.ID)
	require.True(t, found)
	require.Equal(t, "Ivan", loaded.User.Name)
	require.NotNil(t, loaded.Priority)
	require.Equal(t, "urgent", loaded.Priority.Name)
	require.Len(t, loaded.Categories, 2)

	_, found = f.tasks.FindByID(ctx, task.ID+100)
	require.False(t, found)
}

func TestSetDoneByIDMatchesRegardlessOfPriorState(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := f.newTask("to finish", time.Now().UTC(), false)
	require.True(t, f.tasks.Save(ctx, &task))

	require.True(t, f.tasks.SetDoneByID(ctx, task.ID))
	// A second call still matches the row even though done already holds.
	require.True(t, f.tasks.SetDoneByID(ctx, task.ID))

	loaded, found := f.tasks.FindByID(ctx, task.ID)
	require.True(t, found)
	require.True(t, loaded.Done)

	require.False(t, f.tasks.SetDoneByID(ctx, task.ID+100))
}

func TestDeleteByIDKeepsReferenceData(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := f.newTask("doomed", time.Now().UTC(), false)
	require.True(t, f.tasks.Save(ctx, &task))

	require.True(t, f.tasks.DeleteByID(ctx, task.ID))
	require.False(t, f.tasks.DeleteByID(ctx, task.ID))

	_, found := f.tasks.FindByID(ctx, task.ID)
	require.False(t, found)

	var users, priorities, categories, joins int64
	require.NoError(t, f.db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, f.db.Model(&model.Priority{}).Count(&priorities).Error)
	require.NoError(t, f.db.Model(&model.Category{}).Count(&categories).Error)
	require.NoError(t, f.db.Table("task_categories").Count(&joins).Error)
	require.EqualValues(t, 2, users)
	require.EqualValues(t, 2, priorities)
	require.EqualValues(t, 2, categories)
	require.EqualValues(t, 0, joins)
}

func TestUpdateRewritesMutableFields(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := f.newTask("before", time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), false)
	require.True(t, f.tasks.Save(ctx, &task))

	changed := model.Task{
		ID:          task.ID,
		Title:       "after",
		Description: "new description",
		PriorityID:  &f.priorities[1].ID,
		Categories:  f.categories[:1],
	}
	require.True(t, f.tasks.Update(ctx, &changed))

	loaded, found := f.tasks.FindByID(ctx, task.ID)
	require.True(t, found)
	require.Equal(t, "after", loaded.Title)
	require.Equal(t, "new description", loaded.Description)
	require.NotNil(t, loaded.Priority)
	require.Equal(t, "normal", loaded.Priority.Name)
	require.Len(t, loaded.Categories, 1)
	require.Equal(t, "home", loaded.Categories[0].Name)
	// Owner and creation time stay untouched.
	require.Equal(t, f.users[0].ID, loaded.UserID)
	require.True(t, loaded.Created.Equal(task.Created))
}

func TestUpdateReportsFalseWhenNoRowMatches(t *testing.T) {
	f := newTaskFixture(t)

	missing := model.Task{ID: 4242, Title: "ghost"}
	require.False(t, f.tasks.Update(context.Background(), &missing))
}

func TestSaveAssignsID(t *testing.T) {
	f := newTaskFixture(t)

	task := f.newTask("fresh", time.Time{}, false)
	require.True(t, f.tasks.Save(context.Background(), &task))
	require.NotZero(t, task.ID)
	require.False(t, task.Created.IsZero())
}

func TestSaveFailureLeavesNoPartialRow(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Migrator().DropTable(&model.Task{}))

	task := f.newTask("never stored", time.Now().UTC(), false)
	require.False(t, f.tasks.Save(ctx, &task))

	_, found := f.tasks.FindByID(ctx, task.ID)
	require.False(t, found)
}
