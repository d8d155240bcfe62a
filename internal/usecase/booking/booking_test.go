package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/infra/repository"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/testutil"
	"github.com/BruksfildServices01/fitness-booking/internal/timezone"
)

func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	bookings := repository.NewBookingGormRepository(db)
	accounts := repository.NewAccountGormRepository(db)
	classes := repository.NewFitnessClassGormRepository(db)

	trainer := testutil.CreateUser(t, db, "coach", "trainer")
	alice := testutil.CreateUser(t, db, "alice", "user")
	bob := testutil.CreateUser(t, db, "bob", "user")
	class := testutil.CreateClass(t, db, trainer.ID, "Spin")

	create := NewCreateBooking(bookings, accounts, classes, timezone.Location("Asia/Bangkok"), nil)
	list := NewListMyBookings(bookings)
	cancel := NewCancelBooking(bookings, nil)
	fixed := time.Date(2026, 7, 20, 8, 0, 0, 0, time.UTC)
	cancel.now = func() time.Time { return fixed }

	in := CreateInput{ClassID: class.ID.String(), BookingDate: "2026-07-25", BookingTime: "14:00"}

	b, err := create.Execute(ctx, alice.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "booked", b.Status)
	assert.Equal(t, "14:00", b.BookingTime)

	_, err = create.Execute(ctx, alice.ID, in)
	assert.True(t, httperr.IsCode(err, "already_booked"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	mine, err := list.Execute(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "alice", mine[0].User.Username)
	assert.Equal(t, "Spin", mine[0].Class.ClassName)

	_, err = cancel.Execute(ctx, b.ID.String(), bob.ID, false)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	cancelled, err := cancel.Execute(ctx, b.ID.String(), alice.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.True(t, cancelled.CancelledAt.Equal(fixed))

	_, err = cancel.Execute(ctx, b.ID.String(), alice.ID, false)
	assert.True(t, httperr.IsCode(err, "already_cancelled"))

	// a cancelled booking still holds the (user, class) slot
	_, err = create.Execute(ctx, alice.ID, in)
	assert.True(t, httperr.IsCode(err, "already_booked"))

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateBooking_Rejections(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	trainer := testutil.CreateUser(t, db, "coach", "trainer")
	alice := testutil.CreateUser(t, db, "alice", "user")
	class := testutil.CreateClass(t, db, trainer.ID, "Spin")

	create := NewCreateBooking(
		repository.NewBookingGormRepository(db),
		repository.NewAccountGormRepository(db),
		repository.NewFitnessClassGormRepository(db),
		timezone.Location("Asia/Bangkok"),
		nil,
	)

	valid := CreateInput{ClassID: class.ID.String(), BookingDate: "2026-07-25", BookingTime: "14:00"}

	tests := []struct {
		name string
		user uuid.UUID
		mod  func(in *CreateInput)
		code string
	}{
		{"no caller", uuid.Nil, func(in *CreateInput) {}, "unauthorized"},
		{"missing time", alice.ID, func(in *CreateInput) { in.BookingTime = "" }, "missing_fields"},
		{"missing class", alice.ID, func(in *CreateInput) { in.ClassID = "" }, "missing_fields"},
		{"bad class id", alice.ID, func(in *CreateInput) { in.ClassID = "123" }, "invalid_class_id"},
		{"bad date", alice.ID, func(in *CreateInput) { in.BookingDate = "tomorrow" }, "invalid_booking_date"},
		{"bad time", alice.ID, func(in *CreateInput) { in.BookingTime = "2pm" }, "invalid_booking_time"},
		{"unknown user", uuid.New(), func(in *CreateInput) {}, "user_not_found"},
		{"unknown class", alice.ID, func(in *CreateInput) { in.ClassID = uuid.NewString() }, "class_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mod(&in)
			_, err := create.Execute(ctx, tt.user, in)
			require.Error(t, err)
			assert.True(t, httperr.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestCancelBooking_AdminAndMissing(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	bookings := repository.NewBookingGormRepository(db)
	trainer := testutil.CreateUser(t, db, "coach", "trainer")
	admin := testutil.CreateUser(t, db, "root", "admin")
	alice := testutil.CreateUser(t, db, "alice", "user")
	class := testutil.CreateClass(t, db, trainer.ID, "Spin")

	b := &models.Booking{UserID: alice.ID, ClassID: class.ID, BookingDate: time.Now(), BookingTime: "09:30", Status: "booked"}
	require.NoError(t, db.Create(b).Error)

	cancel := NewCancelBooking(bookings, nil)

	_, err := cancel.Execute(ctx, "nope", admin.ID, true)
	assert.True(t, httperr.IsCode(err, "invalid_booking_id"))

	_, err = cancel.Execute(ctx, uuid.NewString(), admin.ID, true)
	assert.True(t, httperr.IsCode(err, "booking_not_found"))

	got, err := cancel.Execute(ctx, b.ID.String(), admin.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
}
