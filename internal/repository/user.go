package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/somchaidev/activity-calendar/internal/model"
)

type UserRepository interface {
	List() ([]*model.User, error)
	ReplaceAll(users []*model.User) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Select(&users, `SELECT id, username, password, fullname FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ReplaceAll(users []*model.User) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`DELETE FROM users`)
	if err != nil {
		return err
	}
	for _, u := range users {
		_, err = tx.Exec(
			`INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)`,
			u.ID, u.Username, u.Password, u.Fullname,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
