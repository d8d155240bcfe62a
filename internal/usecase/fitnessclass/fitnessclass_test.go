package fitnessclass

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/infra/repository"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/testutil"
	"github.com/BruksfildServices01/fitness-booking/internal/timezone"
)

func ptr[T any](v T) *T { return &v }

func fullFields() Fields {
	return Fields{
		ClassName:   ptr("Morning Yoga"),
		TrainerName: ptr("Bee"),
		Price:       ptr(350.0),
		Phone:       ptr("0812345678"),
		Duration:    ptr(60),
		ClassType:   ptr("yoga"),
		Capacity:    ptr(15),
		Description: ptr("Gentle flow"),
		ClassDate:   ptr("2026-07-25"),
		Status:      ptr("active"),
		Location:    ptr("Sukhumvit"),
	}
}

type fixture struct {
	db      *gorm.DB
	store   *testutil.MemoryStore
	create  *CreateClass
	update  *UpdateClass
	list    *ListClasses
	mine    *ListOwnClasses
	del     *DeleteClass
	trainer *models.User
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	classes := repository.NewFitnessClassGormRepository(db)
	accounts := repository.NewAccountGormRepository(db)
	store := testutil.NewMemoryStore()
	loc := timezone.Location("Asia/Bangkok")

	return &fixture{
		db:      db,
		store:   store,
		create:  NewCreateClass(classes, accounts, store, 0, loc, nil),
		update:  NewUpdateClass(classes, store, 0, loc, nil),
		list:    NewListClasses(classes),
		mine:    NewListOwnClasses(classes, accounts),
		del:     NewDeleteClass(classes, nil),
		trainer: testutil.CreateUser(t, db, "coach", "trainer"),
	}
}

func (f *fixture) classCount(t *testing.T) int64 {
	var n int64
	require.NoError(t, f.db.Model(&models.FitnessClass{}).Count(&n).Error)
	return n
}

func TestCreateClass(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cover := testutil.FileHeader(t, "cover.png", "image/png", testutil.PNG(t))

	fc, err := f.create.Execute(ctx, f.trainer.ID, CreateInput{Fields: fullFields(), Cover: cover})
	require.NoError(t, err)
	assert.Equal(t, "Morning Yoga", fc.ClassName)
	assert.Equal(t, f.trainer.ID, fc.CreatedBy)
	assert.Equal(t, "coach", fc.Owner.Username)
	assert.Equal(t, "https://cdn.example.com/uploads/cover.png", fc.Image)
	assert.Equal(t, "active", fc.Status)

	bkk := timezone.Location("Asia/Bangkok")
	assert.True(t, fc.ClassDate.Equal(time.Date(2026, 7, 25, 0, 0, 0, 0, bkk)))
	assert.EqualValues(t, 1, f.classCount(t))
}

func TestCreateClass_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	png := testutil.PNG(t)

	tests := []struct {
		name  string
		owner uuid.UUID
		mod   func(in *CreateInput)
		code  string
	}{
		{"missing field", f.trainer.ID, func(in *CreateInput) { in.Location = nil }, "missing_fields"},
		{"blank field", f.trainer.ID, func(in *CreateInput) { in.ClassName = ptr(" ") }, "missing_fields"},
		{"missing cover", f.trainer.ID, func(in *CreateInput) { in.Cover = nil }, "missing_cover"},
		{"negative price", f.trainer.ID, func(in *CreateInput) { in.Price = ptr(-1.0) }, "invalid_price"},
		{"zero capacity", f.trainer.ID, func(in *CreateInput) { in.Capacity = ptr(0) }, "invalid_capacity"},
		{"bad status", f.trainer.ID, func(in *CreateInput) { in.Status = ptr("open") }, "invalid_status"},
		{"bad date", f.trainer.ID, func(in *CreateInput) { in.ClassDate = ptr("25/07/2026") }, "invalid_classdate"},
		{"unknown owner", uuid.New(), func(in *CreateInput) {}, "user_not_found"},
		{"not an image", f.trainer.ID, func(in *CreateInput) {
			in.Cover = testutil.FileHeader(t, "cover.pdf", "application/pdf", []byte("%PDF"))
		}, "invalid_file_type"},
		{"cover too large", f.trainer.ID, func(in *CreateInput) {
			in.Cover = testutil.FileHeader(t, "cover.png", "image/png", make([]byte, 2_000_000))
		}, "file_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := CreateInput{Fields: fullFields(), Cover: testutil.FileHeader(t, "cover.png", "image/png", png)}
			tt.mod(&in)

			_, err := f.create.Execute(ctx, tt.owner, in)
			require.Error(t, err)
			assert.True(t, httperr.IsCode(err, tt.code), "got %v", err)
		})
	}

	assert.Zero(t, f.classCount(t))
	assert.Zero(t, f.store.Len())
}

func TestCreateClass_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.Err = errors.New("bucket unavailable")

	_, err := f.create.Execute(context.Background(), f.trainer.ID, CreateInput{
		Fields: fullFields(),
		Cover:  testutil.FileHeader(t, "cover.png", "image/png", testutil.PNG(t)),
	})
	assert.True(t, httperr.IsKind(err, httperr.KindUpload))
	assert.Zero(t, f.classCount(t))
}

func TestUpdateClass(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fc := testutil.CreateClass(t, f.db, f.trainer.ID, "Spin")

	_, err := f.update.Execute(ctx, f.trainer.ID, fc.ID.String(), UpdateInput{})
	assert.True(t, httperr.IsCode(err, "empty_update"))

	_, err = f.update.Execute(ctx, f.trainer.ID, "not-a-uuid", UpdateInput{Fields: Fields{ClassName: ptr("x")}})
	assert.True(t, httperr.IsCode(err, "invalid_class_id"))

	_, err = f.update.Execute(ctx, f.trainer.ID, uuid.NewString(), UpdateInput{Fields: Fields{ClassName: ptr("x")}})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	_, err = f.update.Execute(ctx, f.trainer.ID, fc.ID.String(), UpdateInput{Fields: Fields{Duration: ptr(-5)}})
	assert.True(t, httperr.IsCode(err, "invalid_duration"))

	updated, err := f.update.Execute(ctx, f.trainer.ID, fc.ID.String(), UpdateInput{
		Fields: Fields{Price: ptr(800.0), Status: ptr("inactive")},
		Cover:  testutil.FileHeader(t, "new.png", "image/png", testutil.PNG(t)),
	})
	require.NoError(t, err)
	assert.Equal(t, 800.0, updated.Price)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "Spin", updated.ClassName)
	assert.Equal(t, "https://cdn.example.com/uploads/new.png", updated.Image)
}

func TestListClasses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	other := testutil.CreateUser(t, f.db, "other", "trainer")
	member := testutil.CreateUser(t, f.db, "member", "user")
	testutil.CreateClass(t, f.db, f.trainer.ID, "Spin")
	testutil.CreateClass(t, f.db, other.ID, "Boxing")

	all, err := f.list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotEmpty(t, all[0].Owner.Username)

	mine, err := f.mine.Execute(ctx, f.trainer.ID, account.RoleTrainer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Spin", mine[0].ClassName)

	_, err = f.mine.Execute(ctx, member.ID, account.RoleUser)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = f.mine.Execute(ctx, uuid.New(), account.RoleTrainer)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestDeleteClass(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	other := testutil.CreateUser(t, f.db, "other", "trainer")
	fc := testutil.CreateClass(t, f.db, f.trainer.ID, "Spin")

	err := f.del.Execute(ctx, "bad", f.trainer.ID, false)
	assert.True(t, httperr.IsCode(err, "invalid_class_id"))

	err = f.del.Execute(ctx, fc.ID.String(), other.ID, false)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	err = f.del.Execute(ctx, fc.ID.String(), uuid.Nil, false)
	assert.True(t, httperr.IsKind(err, httperr.KindUnauthenticated))

	require.NoError(t, f.del.Execute(ctx, fc.ID.String(), other.ID, true))
	assert.Zero(t, f.classCount(t))

	err = f.del.Execute(ctx, fc.ID.String(), f.trainer.ID, false)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
