package identity

import (
	"database/sql"
)

type RepoSQL struct {
	db *sql.DB
}

func NewRepoSQL(db *sql.DB) *RepoSQL {
	return &RepoSQL{db: db}
}

func (repo *RepoSQL) GetByID(id string) (*Identity, error) {
	query := "SELECT `id`, `bio` FROM identities WHERE id = ?"
	r := repo.db.QueryRow(query, id)

	ident := Identity{}
	err := r.Scan(&ident.ID, &ident.Bio)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ident, nil
}

func (repo *RepoSQL) Add(ident *Identity) error {
	query := "INSERT INTO identities (`id`, `bio`) VALUES (?, ?)"
	_, err := repo.db.Exec(query, ident.ID, ident.Bio)

	return err
}

func (repo *RepoSQL) UpdateBio(id, bio string) error {
	query := "UPDATE identities SET `bio` = ? WHERE id = ?"
	_, err := repo.db.Exec(query, bio, id)

	return err
}
