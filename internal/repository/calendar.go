package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/somchaidev/activity-calendar/internal/model"
)

// YearRepository and MonthRepository keep the whole-range replace
// semantics: the UI always sends the full list back.
type YearRepository interface {
	List() ([]*model.Year, error)
	ReplaceAll(years []*model.Year) error
}

type yearRepository struct {
	db *sqlx.DB
}

func NewYearRepository(db *sqlx.DB) YearRepository {
	return &yearRepository{db: db}
}

func (r *yearRepository) List() ([]*model.Year, error) {
	var years []*model.Year
	err := r.db.Select(&years, `SELECT id, name, start_date, end_date, is_current FROM years ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	return years, nil
}

func (r *yearRepository) ReplaceAll(years []*model.Year) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`DELETE FROM years`)
	if err != nil {
		return err
	}
	for _, y := range years {
		_, err = tx.Exec(
			`INSERT INTO years (id, name, start_date, end_date, is_current) VALUES ($1, $2, $3, $4, $5)`,
			y.ID, y.Name, y.StartDate, y.EndDate, y.IsCurrent,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

type MonthRepository interface {
	List() ([]*model.Month, error)
	ReplaceAll(months []*model.Month) error
}

type monthRepository struct {
	db *sqlx.DB
}

func NewMonthRepository(db *sqlx.DB) MonthRepository {
	return &monthRepository{db: db}
}

func (r *monthRepository) List() ([]*model.Month, error) {
	var months []*model.Month
	err := r.db.Select(&months, `SELECT id, year_id, month, name FROM months ORDER BY month`)
	if err != nil {
		return nil, err
	}
	return months, nil
}

func (r *monthRepository) ReplaceAll(months []*model.Month) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`DELETE FROM months`)
	if err != nil {
		return err
	}
	for _, m := range months {
		_, err = tx.Exec(
			`INSERT INTO months (id, year_id, month, name) VALUES ($1, $2, $3, $4)`,
			m.ID, m.YearID, m.Month, m.Name,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
