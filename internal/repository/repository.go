package repository

import "database/sql"

type Repository struct {
	Journal JournalRepository
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Journal: JournalRepository{db: db},
	}
}
