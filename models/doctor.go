package models

// Doctor is a bookable provider. The directory owns this data; the booking
// core only reads it.
//
// DaysAvailable holds human-readable weekday labels and may mix Arabic and
// English forms ("Monday", "الاثنين"). TimeSlots are opaque labels such as
// "09:00-09:30"; they are compared by exact string equality and carry no
// duration semantics. Slot labels are unique per doctor.
type Doctor struct {
	ID            string   `bson:"id" json:"id"`
	ClinicID      string   `bson:"clinic_id" json:"clinic_id"`
	ClinicName    string   `bson:"clinic_name,omitempty" json:"clinic_name,omitempty"`
	Name          string   `bson:"name" json:"name"`
	Specialty     string   `bson:"specialty,omitempty" json:"specialty,omitempty"`
	DaysAvailable []string `bson:"days_available,omitempty" json:"days_available,omitempty"`
	TimeSlots     []string `bson:"time_slots,omitempty" json:"time_slots,omitempty"`
}

// HasSlot reports whether label is one of the doctor's configured slots.
func (d *Doctor) HasSlot(label string) bool {
	for _, s := range d.TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}
