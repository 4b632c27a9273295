package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/repository"
)

var thaiMonthNames = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// CalendarService fronts the calendar entities. Reads return
// whole ranges; writes replace them, so the last writer wins.
type CalendarService struct {
	days     repository.DayRepository
	years    repository.YearRepository
	months   repository.MonthRepository
	users    repository.UserRepository
	settings repository.SettingsRepository
}

func NewCalendarService(
	days repository.DayRepository,
	years repository.YearRepository,
	months repository.MonthRepository,
	users repository.UserRepository,
	settings repository.SettingsRepository,
) *CalendarService {
	return &CalendarService{
		days:     days,
		years:    years,
		months:   months,
		users:    users,
		settings: settings,
	}
}

func (s *CalendarService) Days() ([]*model.Day, error)          { return s.days.List() }
func (s *CalendarService) ReplaceDays(d []*model.Day) error     { return s.days.ReplaceAll(d) }
func (s *CalendarService) UpsertDay(d *model.Day) error         { return s.days.Upsert(d) }
func (s *CalendarService) Years() ([]*model.Year, error)        { return s.years.List() }
func (s *CalendarService) ReplaceYears(y []*model.Year) error   { return s.years.ReplaceAll(y) }
func (s *CalendarService) ReplaceMonths(m []*model.Month) error { return s.months.ReplaceAll(m) }
func (s *CalendarService) Users() ([]*model.User, error)        { return s.users.List() }
func (s *CalendarService) ReplaceUsers(u []*model.User) error   { return s.users.ReplaceAll(u) }
func (s *CalendarService) Settings() (*model.Settings, error)   { return s.settings.Get() }
func (s *CalendarService) SaveSettings(v *model.Settings) error { return s.settings.Save(v) }

// Months returns all months sorted by value, backfilling a Thai display
// name (month + Buddhist-era year) when a row has none.
func (s *CalendarService) Months() ([]*model.Month, error) {
	months, err := s.months.List()
	if err != nil {
		return nil, err
	}

	for _, m := range months {
		if m.Name == "" && m.Month != "" {
			m.Name = ThaiMonthName(m.Month)
		}
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}

// ThaiMonthName renders a yyyy-MM value as a Thai month name with the
// Buddhist-era year, e.g. "2025-05" -> "พฤษภาคม 2568".
func ThaiMonthName(value string) string {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return value
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return value
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return value
	}
	return fmt.Sprintf("%s %d", thaiMonthNames[month-1], year+543)
}
