package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/vaultpass/passgen/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

var (
	ErrWordNotFound  = errors.New("word not found")
	ErrDuplicateWord = errors.New("word already banned")
)

// DenylistRepository handles persistence of custom banned passwords.
type DenylistRepository struct {
	db *sql.DB
}

// NewDenylistRepository creates a new DenylistRepository.
func NewDenylistRepository(db *sql.DB) *DenylistRepository {
	return &DenylistRepository{db: db}
}

// List returns every banned word ordered alphabetically.
func (r *DenylistRepository) List(ctx context.Context) ([]model.BannedPassword, error) {
	query := `SELECT id, word, created_at FROM banned_passwords ORDER BY word ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []model.BannedPassword
	for rows.Next() {
		var w model.BannedPassword
		if err := rows.Scan(&w.ID, &w.Word, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// Add inserts word and returns the stored entry.
func (r *DenylistRepository) Add(ctx context.Context, word string) (*model.BannedPassword, error) {
	query := `INSERT INTO banned_passwords (word) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, word)
	if err != nil {
		if isDuplicateEntryError(err) {
			return nil, ErrDuplicateWord
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.BannedPassword{
		ID:        id,
		Word:      word,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Remove deletes word. It returns ErrWordNotFound when nothing was deleted.
func (r *DenylistRepository) Remove(ctx context.Context, word string) error {
	query := `DELETE FROM banned_passwords WHERE word = ?`

	result, err := r.db.ExecContext(ctx, query, word)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWordNotFound
	}

	return nil
}

// isDuplicateEntryError checks if err is a MySQL unique key violation (code 1062).
func isDuplicateEntryError(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
