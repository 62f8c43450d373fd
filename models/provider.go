package models

// Provider describes a clinician's work calendar.
type Provider struct {
	ID                string `bson:"id" json:"id"`
	Name              string `bson:"name" json:"name"`                           // unique lookup key
	WorkDays          []int  `bson:"workDays" json:"workDays"`                   // 0 = Sunday ... 6 = Saturday
	StartTime         string `bson:"startTime" json:"startTime"`                 // "09:00" (24h format)
	EndTime           string `bson:"endTime" json:"endTime"`                     // "17:00"
	SlotLengthMinutes int    `bson:"slotLengthMinutes" json:"slotLengthMinutes"` // e.g. 30
}

// DefaultSchedule is the work calendar applied to providers that have no
// directory record: Monday to Friday, 09:00-17:00, 30-minute slots.
func DefaultSchedule(name string) Provider {
	return Provider{
		Name:              name,
		WorkDays:          []int{1, 2, 3, 4, 5},
		StartTime:         "09:00",
		EndTime:           "17:00",
		SlotLengthMinutes: 30,
	}
}

// WorksOn reports whether weekday (0 = Sunday) is one of the provider's work days.
func (p Provider) WorksOn(weekday int) bool {
	for _, d := range p.WorkDays {
		if d == weekday {
			return true
		}
	}
	return false
}
