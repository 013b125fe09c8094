package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/livante/growthlab/core/user"
)

type userRow struct {
	ID                  string     `db:"id"`
	Name                string     `db:"name"`
	Email               string     `db:"email"`
	SubscriptionStatus  string     `db:"subscription_status"`
	SubscriptionEndDate *time.Time `db:"subscription_end_date"`
	IsActive            bool       `db:"is_active"`
	PasswordHash        []byte     `db:"password_hash"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	LastLogin           *time.Time `db:"last_login"`
}

func (r userRow) toUser() user.User {
	usr := user.User{
		ID:                  r.ID,
		Name:                r.Name,
		Email:               r.Email,
		SubscriptionStatus:  r.SubscriptionStatus,
		SubscriptionEndDate: r.SubscriptionEndDate,
		IsActive:            r.IsActive,
		PasswordHash:        r.PasswordHash,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if r.LastLogin != nil {
		usr.LastLogin = *r.LastLogin
	}
	return usr
}

func newUserRow(usr user.User) userRow {
	r := userRow{
		ID:                  usr.ID,
		Name:                usr.Name,
		Email:               usr.Email,
		SubscriptionStatus:  usr.SubscriptionStatus,
		SubscriptionEndDate: usr.SubscriptionEndDate,
		IsActive:            usr.IsActive,
		PasswordHash:        usr.PasswordHash,
		CreatedAt:           usr.CreatedAt,
		UpdatedAt:           usr.UpdatedAt,
	}
	if !usr.LastLogin.IsZero() {
		ll := usr.LastLogin
		r.LastLogin = &ll
	}
	return r
}

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckEmailUniqueness(email string, excludedUsers ...user.User) error {
	query := `SELECT COUNT(*) FROM "user" WHERE email = $1`
	args := []interface{}{email}
	if len(excludedUsers) > 0 {
		ids := make([]string, 0, len(excludedUsers))
		for _, usr := range excludedUsers {
			ids = append(ids, usr.ID)
		}
		inQuery, inArgs, err := sqlx.In(`SELECT COUNT(*) FROM "user" WHERE email = ? AND id NOT IN (?)`, email, ids)
		if err != nil {
			return err
		}
		query = repo.db.Rebind(inQuery)
		args = inArgs
	}

	var count int
	if err := repo.db.Get(&count, query, args...); err != nil {
		return err
	}
	if count > 0 {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	query := `
		INSERT INTO "user" (id, name, email, subscription_status, subscription_end_date, is_active, password_hash, created_at, updated_at, last_login)
		VALUES (:id, :name, :email, :subscription_status, :subscription_end_date, :is_active, :password_hash, :created_at, :updated_at, :last_login)`
	if _, err := repo.db.NamedExec(query, newUserRow(usr)); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	var row userRow
	if err := repo.db.Get(&row, `SELECT * FROM "user" WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return row.toUser(), nil
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	var row userRow
	if err := repo.db.Get(&row, `SELECT * FROM "user" WHERE email = $1`, email); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return row.toUser(), nil
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	query := `
		UPDATE "user"
		SET name = :name,
			email = :email,
			subscription_status = :subscription_status,
			subscription_end_date = :subscription_end_date,
			is_active = :is_active,
			password_hash = :password_hash,
			updated_at = :updated_at,
			last_login = :last_login
		WHERE id = :id`
	res, err := repo.db.NamedExec(query, newUserRow(usr))
	if err != nil {
		return user.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
