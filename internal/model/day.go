package model

// DayEntry is a single activity line on a day.
type DayEntry struct {
	ID          string `json:"id"`
	Detail      string `json:"detail"`
	Responsible string `json:"responsible"`
}

// Day is one calendar date with its activity entries and attachments.
// Both lists persist as JSON columns alongside the day row.
type Day struct {
	ID          string       `json:"id" db:"id"`
	MonthID     string       `json:"monthId" db:"month_id"`
	Date        string       `json:"date" db:"date"` // yyyy-MM-dd
	Entries     []DayEntry   `json:"entries" db:"-"`
	Attachments []Attachment `json:"attachments" db:"-"`
}
