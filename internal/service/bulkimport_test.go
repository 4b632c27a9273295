package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/somchaidev/activity-calendar/internal/model"
)

type fakeDayRepo struct {
	days []*model.Day
}

func (f *fakeDayRepo) List() ([]*model.Day, error) { return f.days, nil }

func (f *fakeDayRepo) ReplaceAll(days []*model.Day) error {
	f.days = days
	return nil
}

func (f *fakeDayRepo) Upsert(day *model.Day) error {
	for i, d := range f.days {
		if d.ID == day.ID {
			f.days[i] = day
			return nil
		}
	}
	f.days = append(f.days, day)
	return nil
}

type fakeMonthRepo struct {
	months []*model.Month
}

func (f *fakeMonthRepo) List() ([]*model.Month, error) { return f.months, nil }

func (f *fakeMonthRepo) ReplaceAll(months []*model.Month) error {
	f.months = months
	return nil
}

// May 2025 has holidays on the 1st (วันแรงงานแห่งชาติ, a Thursday), the
// 4th (วันฉัตรมงคล, a Sunday) and the 12th (วันวิสาขบูชา, a Monday),
// plus nine weekend days.
func mayMonth() *model.Month {
	return &model.Month{ID: "m-2025-05", YearID: "y1", Month: "2025-05", Name: "พฤษภาคม 2568"}
}

func TestGenerateMonthWeekendsOnly(t *testing.T) {
	t.Parallel()

	days := &fakeDayRepo{}
	svc := NewImportService(days, &fakeMonthRepo{months: []*model.Month{mayMonth()}})

	result, err := svc.Generate(ImportRequest{
		MonthIDs:        []string{"m-2025-05"},
		IncludeWeekends: true,
	})
	require.NoError(t, err)

	// May 2025 has 9 weekend days (Sat 3,10,17,24,31 and Sun 4,11,18,25).
	require.Equal(t, 9, result.Created)
	for _, d := range result.Days {
		require.Len(t, d.Entries, 1)
		detail := d.Entries[0].Detail
		require.Contains(t, []string{"วันเสาร์", "วันอาทิตย์"}, detail)
	}
}

func TestGenerateHolidayLabelBeatsWeekendLabel(t *testing.T) {
	t.Parallel()

	days := &fakeDayRepo{}
	svc := NewImportService(days, &fakeMonthRepo{months: []*model.Month{mayMonth()}})

	result, err := svc.Generate(ImportRequest{
		MonthIDs:        []string{"m-2025-05"},
		IncludeWeekends: true,
		IncludeHolidays: true,
	})
	require.NoError(t, err)

	byDate := map[string]string{}
	for _, d := range result.Days {
		byDate[d.Date] = d.Entries[0].Detail
	}

	// 2025-05-04 is a Sunday and also a public holiday; the holiday name
	// with its source must win over the weekend label.
	require.Contains(t, byDate["2025-05-04"], "วันฉัตรมงคล")
	require.NotEqual(t, "วันอาทิตย์", byDate["2025-05-04"])
	// 2025-05-01 is a weekday holiday.
	require.Contains(t, byDate["2025-05-01"], "วันแรงงานแห่งชาติ")
	// A plain Saturday keeps the weekend label.
	require.Equal(t, "วันเสาร์", byDate["2025-05-03"])
}

func TestGenerateSkipsExistingDates(t *testing.T) {
	t.Parallel()

	days := &fakeDayRepo{days: []*model.Day{
		{ID: "existing", MonthID: "m-2025-05", Date: "2025-05-03"},
	}}
	svc := NewImportService(days, &fakeMonthRepo{months: []*model.Month{mayMonth()}})

	result, err := svc.Generate(ImportRequest{
		MonthIDs:        []string{"m-2025-05"},
		IncludeWeekends: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Skipped)
	for _, d := range result.Days {
		require.NotEqual(t, "2025-05-03", d.Date)
	}
}

func TestGenerateDateRange(t *testing.T) {
	t.Parallel()

	days := &fakeDayRepo{}
	svc := NewImportService(days, &fakeMonthRepo{months: []*model.Month{mayMonth()}})

	result, err := svc.Generate(ImportRequest{
		StartDate:       "2025-05-01",
		EndDate:         "2025-05-07",
		IncludeWeekends: true,
		IncludeHolidays: true,
	})
	require.NoError(t, err)

	// 1st (holiday), 3rd (Saturday), 4th (Sunday, labeled as the holiday).
	require.Equal(t, 3, result.Created)
}

func TestGenerateRangeIgnoresUnknownMonths(t *testing.T) {
	t.Parallel()

	days := &fakeDayRepo{}
	svc := NewImportService(days, &fakeMonthRepo{months: []*model.Month{mayMonth()}})

	result, err := svc.Generate(ImportRequest{
		StartDate:       "2030-01-01",
		EndDate:         "2030-01-31",
		IncludeWeekends: true,
	})
	require.NoError(t, err)
	require.Zero(t, result.Created)
	require.Empty(t, days.days)
}

func TestGenerateRequiresSelection(t *testing.T) {
	t.Parallel()

	svc := NewImportService(&fakeDayRepo{}, &fakeMonthRepo{})

	_, err := svc.Generate(ImportRequest{IncludeWeekends: true})
	require.Error(t, err)

	_, err = svc.Generate(ImportRequest{StartDate: "2025-05-01"})
	require.Error(t, err)
}

func TestGenerateRejectsBadDates(t *testing.T) {
	t.Parallel()

	svc := NewImportService(&fakeDayRepo{}, &fakeMonthRepo{})

	_, err := svc.Generate(ImportRequest{StartDate: "01/05/2025", EndDate: "2025-05-31"})
	require.Error(t, err)
}
