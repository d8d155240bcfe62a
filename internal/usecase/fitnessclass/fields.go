package fitnessclass

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/timezone"
)

// Fields is the client-supplied view of a class. Nil means "not sent".
type Fields struct {
	ClassName   *string  `form:"className" json:"className"`
	TrainerName *string  `form:"trainerName" json:"trainerName"`
	Price       *float64 `form:"price" json:"price"`
	Phone       *string  `form:"phone" json:"phone"`
	Duration    *int     `form:"duration" json:"duration"`
	ClassType   *string  `form:"classType" json:"classType"`
	Capacity    *int     `form:"capacity" json:"capacity"`
	Description *string  `form:"description" json:"description"`
	ClassDate   *string  `form:"classDate" json:"classDate"`
	Status      *string  `form:"status" json:"status"`
	Location    *string  `form:"location" json:"location"`
}

func (f Fields) complete() bool {
	for _, s := range []*string{
		f.ClassName, f.TrainerName, f.Phone, f.ClassType,
		f.Description, f.ClassDate, f.Status, f.Location,
	} {
		if s == nil || strings.TrimSpace(*s) == "" {
			return false
		}
	}
	return f.Price != nil && f.Duration != nil && f.Capacity != nil
}

// toUpdate validates the sent fields and converts them to a domain update.
func (f Fields) toUpdate(loc *time.Location) (domain.Update, error) {
	var upd domain.Update

	text := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		if v == "" {
			return nil
		}
		return &v
	}

	upd.ClassName = text(f.ClassName)
	upd.TrainerName = text(f.TrainerName)
	upd.Phone = text(f.Phone)
	upd.ClassType = text(f.ClassType)
	upd.Description = text(f.Description)
	upd.Location = text(f.Location)

	if f.Price != nil {
		if *f.Price <= 0 {
			return upd, invalidField("price")
		}
		upd.Price = f.Price
	}
	if f.Duration != nil {
		if *f.Duration <= 0 {
			return upd, invalidField("duration")
		}
		upd.Duration = f.Duration
	}
	if f.Capacity != nil {
		if *f.Capacity <= 0 {
			return upd, invalidField("capacity")
		}
		upd.Capacity = f.Capacity
	}

	if s := text(f.Status); s != nil {
		status := domain.Status(strings.ToLower(*s))
		if !status.Valid() {
			return upd, invalidField("status")
		}
		upd.Status = &status
	}

	if s := text(f.ClassDate); s != nil {
		date, err := timezone.ParseDate(*s, loc)
		if err != nil {
			return upd, invalidField("classDate")
		}
		upd.ClassDate = &date
	}

	return upd, nil
}

func invalidField(name string) error {
	return httperr.ErrValidation("invalid_"+strings.ToLower(name), "Invalid "+name)
}

func errInvalidClassID() error {
	return httperr.ErrValidation("invalid_class_id", "Invalid classId")
}

func errClassNotFound() error {
	return httperr.ErrNotFound("class_not_found", "Class not found")
}
