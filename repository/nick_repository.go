package repository

import (
	"database/sql"
	"fmt"

	"github.com/JoseTorresAguirre/back-game/model"
)

// NickRepository defines the interface for nick data operations.
type NickRepository interface {
	CreateNick(userID int64, nick string) (int64, error)
	GetNickByUserID(userID int64) (*model.Nick, error)
}

// mysqlNickRepository implements NickRepository for MySQL.
type mysqlNickRepository struct {
	db *sql.DB
}

// NewMySQLNickRepository creates a new mysqlNickRepository.
func NewMySQLNickRepository(db *sql.DB) NickRepository {
	return &mysqlNickRepository{db: db}
}

// CreateNick inserts a nick for the given user. The user-existence check and
// the insert run in one transaction; on any failure the transaction is rolled
// back and nothing is written. An unknown userID yields ErrUserNotFound.
func (r *mysqlNickRepository) CreateNick(userID int64, nick string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin create nick transaction: %w", err)
	}

	var existingID int64
	err = tx.QueryRow("SELECT id FROM users WHERE id = ?", userID).Scan(&existingID)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to check user %d before nick insert: %w", userID, err)
	}

	res, err := tx.Exec("INSERT INTO nicks (user_id, nick) VALUES (?, ?)", userID, nick)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to execute create nick statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to get last insert ID for nick: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit create nick transaction: %w", err)
	}
	return id, nil
}

// GetNickByUserID retrieves the first nick on record for a user, oldest row
// first so repeated reads of an unchanged dataset agree. Returns nil when the
// user has no nick.
func (r *mysqlNickRepository) GetNickByUserID(userID int64) (*model.Nick, error) {
	query := "SELECT id, user_id, nick FROM nicks WHERE user_id = ? ORDER BY id LIMIT 1"
	row := r.db.QueryRow(query, userID)
	n := &model.Nick{}
	err := row.Scan(&n.ID, &n.UserID, &n.Nick)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No nick yet
		}
		return nil, fmt.Errorf("failed to scan nick row for user %d: %w", userID, err)
	}
	return n, nil
}
