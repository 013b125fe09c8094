package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/livante/growthlab/core/story"
)

type storyRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Story     string    `db:"story"`
	Skill     string    `db:"skill"`
	Outcome   string    `db:"outcome"`
	CreatedAt time.Time `db:"created_at"`
}

type storyRepository struct {
	db *sqlx.DB
}

var _ story.Repository = (*storyRepository)(nil) // interface compliance check

func NewStoryRepository(db *sqlx.DB) story.Repository {
	return &storyRepository{db: db}
}

func (repo *storyRepository) QueryAllStories() ([]story.Story, error) {
	var rows []storyRow
	if err := repo.db.Select(&rows, `SELECT * FROM success_story ORDER BY created_at`); err != nil {
		return nil, err
	}
	stories := make([]story.Story, 0, len(rows))
	for _, row := range rows {
		stories = append(stories, story.Story(row))
	}
	return stories, nil
}

func (repo *storyRepository) GetStoryByID(id string) (story.Story, error) {
	var row storyRow
	if err := repo.db.Get(&row, `SELECT * FROM success_story WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return story.Story{}, story.ErrNotFound
		}
		return story.Story{}, err
	}
	return story.Story(row), nil
}

func (repo *storyRepository) CreateStory(st story.Story) (story.Story, error) {
	query := `
		INSERT INTO success_story (id, name, story, skill, outcome, created_at)
		VALUES (:id, :name, :story, :skill, :outcome, :created_at)`
	if _, err := repo.db.NamedExec(query, storyRow(st)); err != nil {
		return story.Story{}, err
	}
	return st, nil
}
