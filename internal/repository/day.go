package repository

import (
	"encoding/json"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/somchaidev/activity-calendar/internal/model"
)

// DayRepository persists day records with the replace-the-range semantics
// the calendar UI expects: POST replaces the whole table, PUT upserts one
// row by id.
type DayRepository interface {
	List() ([]*model.Day, error)
	ReplaceAll(days []*model.Day) error
	Upsert(day *model.Day) error
}

type dayRepository struct {
	db *sqlx.DB
}

func NewDayRepository(db *sqlx.DB) DayRepository {
	return &dayRepository{db: db}
}

// dayRow is the storage shape: entries and attachments are JSON columns.
type dayRow struct {
	ID          string `db:"id"`
	MonthID     string `db:"month_id"`
	Date        string `db:"date"`
	Entries     string `db:"entries"`
	Attachments string `db:"attachments"`
}

func (r *dayRepository) List() ([]*model.Day, error) {
	var rows []dayRow
	err := r.db.Select(&rows, `SELECT id, month_id, date, entries, attachments FROM days ORDER BY date`)
	if err != nil {
		return nil, err
	}

	days := make([]*model.Day, 0, len(rows))
	for _, row := range rows {
		days = append(days, row.toModel())
	}
	return days, nil
}

func (r *dayRepository) ReplaceAll(days []*model.Day) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`DELETE FROM days`)
	if err != nil {
		return err
	}

	for _, day := range days {
		row, err := rowFromDay(day)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			`INSERT INTO days (id, month_id, date, entries, attachments) VALUES ($1, $2, $3, $4, $5)`,
			row.ID, row.MonthID, row.Date, row.Entries, row.Attachments,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *dayRepository) Upsert(day *model.Day) error {
	row, err := rowFromDay(day)
	if err != nil {
		return err
	}

	res, err := r.db.Exec(
		`UPDATE days SET month_id = $1, date = $2, entries = $3, attachments = $4 WHERE id = $5`,
		row.MonthID, row.Date, row.Entries, row.Attachments, row.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		_, err = r.db.Exec(
			`INSERT INTO days (id, month_id, date, entries, attachments) VALUES ($1, $2, $3, $4, $5)`,
			row.ID, row.MonthID, row.Date, row.Entries, row.Attachments,
		)
	}
	return err
}

func rowFromDay(day *model.Day) (*dayRow, error) {
	entries := day.Entries
	if entries == nil {
		entries = []model.DayEntry{}
	}
	attachments := day.Attachments
	if attachments == nil {
		attachments = []model.Attachment{}
	}

	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	attachmentsJSON, err := json.Marshal(attachments)
	if err != nil {
		return nil, err
	}

	return &dayRow{
		ID:          day.ID,
		MonthID:     day.MonthID,
		Date:        day.Date,
		Entries:     string(entriesJSON),
		Attachments: string(attachmentsJSON),
	}, nil
}

func (row dayRow) toModel() *model.Day {
	day := &model.Day{
		ID:          row.ID,
		MonthID:     row.MonthID,
		Date:        row.Date,
		Entries:     []model.DayEntry{},
		Attachments: []model.Attachment{},
	}

	// A malformed column loses its list but never the row.
	if row.Entries != "" {
		err := json.Unmarshal([]byte(row.Entries), &day.Entries)
		if err != nil {
			slog.Error("bad entries JSON for day", "id", row.ID, "error", err)
		}
	}
	if row.Attachments != "" {
		err := json.Unmarshal([]byte(row.Attachments), &day.Attachments)
		if err != nil {
			slog.Error("bad attachments JSON for day", "id", row.ID, "error", err)
		}
	}
	return day
}
