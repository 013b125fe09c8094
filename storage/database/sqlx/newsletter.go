package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/livante/growthlab/core/newsletter"
)

type subscriberRow struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type subscriberRepository struct {
	db *sqlx.DB
}

var _ newsletter.Repository = (*subscriberRepository)(nil) // interface compliance check

func NewSubscriberRepository(db *sqlx.DB) newsletter.Repository {
	return &subscriberRepository{db: db}
}

func (repo *subscriberRepository) GetSubscriberByEmail(email string) (newsletter.Subscriber, error) {
	var row subscriberRow
	if err := repo.db.Get(&row, `SELECT * FROM newsletter_subscriber WHERE email = $1`, email); err != nil {
		if err == sql.ErrNoRows {
			return newsletter.Subscriber{}, newsletter.ErrNotFound
		}
		return newsletter.Subscriber{}, err
	}
	return newsletter.Subscriber(row), nil
}

func (repo *subscriberRepository) CreateSubscriber(sub newsletter.Subscriber) (newsletter.Subscriber, error) {
	query := `INSERT INTO newsletter_subscriber (id, email, created_at) VALUES (:id, :email, :created_at)`
	if _, err := repo.db.NamedExec(query, subscriberRow(sub)); err != nil {
		return newsletter.Subscriber{}, err
	}
	return sub, nil
}
