package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/somchaidev/activity-calendar/internal/model"
)

func TestThaiMonthName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "พฤษภาคม 2568", ThaiMonthName("2025-05"))
	require.Equal(t, "มกราคม 2569", ThaiMonthName("2026-01"))
	require.Equal(t, "ธันวาคม 2568", ThaiMonthName("2025-12"))

	// Unparseable values pass through untouched.
	require.Equal(t, "2025", ThaiMonthName("2025"))
	require.Equal(t, "2025-13", ThaiMonthName("2025-13"))
	require.Equal(t, "abcd-05", ThaiMonthName("abcd-05"))
}

func TestMonthsBackfillsNamesAndSorts(t *testing.T) {
	t.Parallel()

	months := &fakeMonthRepo{months: []*model.Month{
		{ID: "m2", YearID: "y1", Month: "2025-06"},
		{ID: "m1", YearID: "y1", Month: "2025-05", Name: "ชื่อที่ตั้งเอง"},
	}}
	svc := NewCalendarService(&fakeDayRepo{}, nil, months, nil, nil)

	got, err := svc.Months()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "m1", got[0].ID)
	// An explicit name is kept, a missing one is derived.
	require.Equal(t, "ชื่อที่ตั้งเอง", got[0].Name)
	require.Equal(t, "มิถุนายน 2568", got[1].Name)
}
