package fitnessclass

import "time"

// Update is a partial change to a class; nil fields are left untouched.
type Update struct {
	ClassName   *string
	TrainerName *string
	Price       *float64
	Phone       *string
	Duration    *int
	ClassType   *string
	Capacity    *int
	Description *string
	ClassDate   *time.Time
	Status      *Status
	Image       *string
	Location    *string
}

func (u Update) IsEmpty() bool {
	return len(u.Columns()) == 0
}

// Columns returns the column/value pairs to write.
func (u Update) Columns() map[string]any {
	cols := map[string]any{}
	if u.ClassName != nil {
		cols["class_name"] = *u.ClassName
	}
	if u.TrainerName != nil {
		cols["trainer_name"] = *u.TrainerName
	}
	if u.Price != nil {
		cols["price"] = *u.Price
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	if u.Duration != nil {
		cols["duration"] = *u.Duration
	}
	if u.ClassType != nil {
		cols["class_type"] = *u.ClassType
	}
	if u.Capacity != nil {
		cols["capacity"] = *u.Capacity
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.ClassDate != nil {
		cols["class_date"] = *u.ClassDate
	}
	if u.Status != nil {
		cols["status"] = string(*u.Status)
	}
	if u.Image != nil {
		cols["image"] = *u.Image
	}
	if u.Location != nil {
		cols["location"] = *u.Location
	}

	return cols
}
