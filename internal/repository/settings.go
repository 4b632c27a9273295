package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/somchaidev/activity-calendar/internal/model"
)

// SettingsRepository stores the school identity as key/value rows.
type SettingsRepository interface {
	Get() (*model.Settings, error)
	Save(settings *model.Settings) error
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

type settingRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (r *settingsRepository) Get() (*model.Settings, error) {
	var rows []settingRow
	err := r.db.Select(&rows, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}

	settings := &model.Settings{}
	for _, row := range rows {
		switch row.Key {
		case "schoolName":
			settings.SchoolName = row.Value
		case "educationOffice":
			settings.EducationOffice = row.Value
		case "schoolLogo":
			settings.SchoolLogo = row.Value
		}
	}
	return settings, nil
}

func (r *settingsRepository) Save(settings *model.Settings) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`DELETE FROM settings`)
	if err != nil {
		return err
	}

	pairs := map[string]string{
		"schoolName":      settings.SchoolName,
		"educationOffice": settings.EducationOffice,
		"schoolLogo":      settings.SchoolLogo,
	}
	for key, value := range pairs {
		_, err = tx.Exec(`INSERT INTO settings (key, value) VALUES ($1, $2)`, key, value)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
