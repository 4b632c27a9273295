package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/somchaidev/activity-calendar/internal/model"
)

func TestSettingsRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	// Empty table reads as zero-value settings, not an error.
	got, err := repo.Get()
	require.NoError(t, err)
	require.Empty(t, got.SchoolName)

	want := &model.Settings{
		SchoolName:      "โรงเรียนบ้านหนองใหญ่",
		EducationOffice: "สพป.ขอนแก่น เขต 1",
		SchoolLogo:      "/uploads/1700000000000_logo.png",
	}
	require.NoError(t, repo.Save(want))

	got, err = repo.Get()
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Saving again overwrites instead of accumulating rows.
	want.EducationOffice = "สพป.ขอนแก่น เขต 2"
	require.NoError(t, repo.Save(want))

	got, err = repo.Get()
	require.NoError(t, err)
	require.Equal(t, "สพป.ขอนแก่น เขต 2", got.EducationOffice)
}

func TestYearAndMonthReplaceAll(t *testing.T) {
	database := newTestDB(t)
	years := NewYearRepository(database)
	months := NewMonthRepository(database)

	require.NoError(t, years.ReplaceAll([]*model.Year{
		{ID: "y1", Name: "ปีการศึกษา 2568", StartDate: "2025-05-01", EndDate: "2026-04-30", IsCurrent: true},
	}))
	require.NoError(t, months.ReplaceAll([]*model.Month{
		{ID: "m1", YearID: "y1", Month: "2025-05", Name: "พฤษภาคม 2568"},
		{ID: "m2", YearID: "y1", Month: "2025-06", Name: "มิถุนายน 2568"},
	}))

	gotYears, err := years.List()
	require.NoError(t, err)
	require.Len(t, gotYears, 1)
	require.True(t, gotYears[0].IsCurrent)

	gotMonths, err := months.List()
	require.NoError(t, err)
	require.Len(t, gotMonths, 2)

	// Replacing with a shorter list removes the rest.
	require.NoError(t, months.ReplaceAll([]*model.Month{
		{ID: "m1", YearID: "y1", Month: "2025-05", Name: "พฤษภาคม 2568"},
	}))
	gotMonths, err = months.List()
	require.NoError(t, err)
	require.Len(t, gotMonths, 1)
}

func TestUserReplaceAll(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	require.NoError(t, users.ReplaceAll([]*model.User{
		{ID: "u1", Username: "somchai", Password: "s3cret", Fullname: "สมชาย ใจดี"},
	}))

	got, err := users.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "somchai", got[0].Username)
	require.Equal(t, "s3cret", got[0].Password)
}
