package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/repository"
)

const dateLayout = "2006-01-02"

// ImportRequest selects the dates to pre-fill: whole months by id, or an
// inclusive date range. Dates that already have a day row are skipped.
type ImportRequest struct {
	MonthIDs        []string `json:"monthIds"`
	StartDate       string   `json:"startDate"` // yyyy-MM-dd, used with EndDate
	EndDate         string   `json:"endDate"`
	IncludeWeekends bool     `json:"includeWeekends"`
	IncludeHolidays bool     `json:"includeHolidays"`
}

// ImportResult reports what the generator did.
type ImportResult struct {
	Created int          `json:"created"`
	Skipped int          `json:"skipped"`
	Days    []*model.Day `json:"days"`
}

// ImportService bulk-creates day rows labeled with public holidays and
// weekend markers, the server-side version of the calendar's bulk-import
// dialog.
type ImportService struct {
	days   repository.DayRepository
	months repository.MonthRepository
}

func NewImportService(days repository.DayRepository, months repository.MonthRepository) *ImportService {
	return &ImportService{days: days, months: months}
}

func (s *ImportService) Generate(req ImportRequest) (*ImportResult, error) {
	if len(req.MonthIDs) == 0 && (req.StartDate == "" || req.EndDate == "") {
		return nil, fmt.Errorf("select months or a start and end date")
	}

	months, err := s.months.List()
	if err != nil {
		return nil, fmt.Errorf("load months: %w", err)
	}
	existing, err := s.existingDates()
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}

	monthByID := make(map[string]*model.Month, len(months))
	monthByValue := make(map[string]*model.Month, len(months))
	for _, m := range months {
		monthByID[m.ID] = m
		monthByValue[m.Month] = m
	}

	result := &ImportResult{}

	process := func(monthID, dateStr string, weekday time.Weekday) error {
		if existing[monthID+"|"+dateStr] {
			result.Skipped++
			return nil
		}

		detail := ""
		if req.IncludeHolidays {
			h, ok := HolidayOn(dateStr)
			if ok {
				detail = fmt.Sprintf("%s (%s)", h.Name, h.Source)
			}
		}
		if detail == "" && req.IncludeWeekends {
			switch weekday {
			case time.Sunday:
				detail = "วันอาทิตย์"
			case time.Saturday:
				detail = "วันเสาร์"
			}
		}
		if detail == "" {
			return nil
		}

		day := &model.Day{
			ID:      uuid.New().String(),
			MonthID: monthID,
			Date:    dateStr,
			Entries: []model.DayEntry{{ID: uuid.New().String(), Detail: detail}},
		}
		err := s.days.Upsert(day)
		if err != nil {
			return fmt.Errorf("create day %s: %w", dateStr, err)
		}
		existing[monthID+"|"+dateStr] = true
		result.Created++
		result.Days = append(result.Days, day)
		return nil
	}

	for _, monthID := range req.MonthIDs {
		month, ok := monthByID[monthID]
		if !ok {
			continue
		}
		first, err := time.Parse("2006-01", month.Month)
		if err != nil {
			return nil, fmt.Errorf("month %s has invalid value %q", month.ID, month.Month)
		}
		for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
			err = process(monthID, d.Format(dateLayout), d.Weekday())
			if err != nil {
				return nil, err
			}
		}
	}

	if req.StartDate != "" && req.EndDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q", req.StartDate)
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q", req.EndDate)
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			// Dates outside any known month are silently skipped.
			month, ok := monthByValue[d.Format("2006-01")]
			if !ok {
				continue
			}
			err = process(month.ID, d.Format(dateLayout), d.Weekday())
			if err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

func (s *ImportService) existingDates() (map[string]bool, error) {
	days, err := s.days.List()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d.MonthID+"|"+d.Date] = true
	}
	return set, nil
}
