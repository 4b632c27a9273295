package model

// Year is an academic year.
type Year struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	StartDate string `json:"startDate" db:"start_date"` // yyyy-MM-dd
	EndDate   string `json:"endDate" db:"end_date"`     // yyyy-MM-dd
	IsCurrent bool   `json:"isCurrent" db:"is_current"`
}

// Month is one calendar month inside a year.
type Month struct {
	ID     string `json:"id" db:"id"`
	YearID string `json:"yearId" db:"year_id"`
	Month  string `json:"month" db:"month"` // yyyy-MM
	Name   string `json:"name" db:"name"`
}

// User is a calendar editor account. Passwords are stored and compared
// in plaintext; this application has no stronger credential model.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password,omitempty" db:"password"`
	Fullname string `json:"fullname" db:"fullname"`
}

// Settings holds the school identity shown on the calendar header.
type Settings struct {
	SchoolName      string `json:"schoolName"`
	EducationOffice string `json:"educationOffice"`
	SchoolLogo      string `json:"schoolLogo"`
}
