package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/JoseTorresAguirre/back-game/model"

	"github.com/go-sql-driver/mysql"
)

// mysqlErrDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlErrDuplicateEntry = 1062

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user *model.User) (int64, error)
	GetUserByID(id int64) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
}

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new mysqlUserRepository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

// CreateUser adds a new user to the database inside a transaction, so a
// failed insert leaves no partial row. A unique-key collision on email or
// dni is reported as ErrDuplicateUser.
func (r *mysqlUserRepository) CreateUser(user *model.User) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin create user transaction: %w", err)
	}

	query := "INSERT INTO users (nombres, apellidos, email, dni, celular, pais, departamento, direccion, password_hash) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	res, err := tx.Exec(query,
		user.Nombres, user.Apellidos, user.Email, user.DNI,
		user.Celular, user.Pais, user.Departamento, user.Direccion,
		user.PasswordHash)
	if err != nil {
		tx.Rollback()
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateUser, mysqlErr.Message)
		}
		return 0, fmt.Errorf("failed to execute create user statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to get last insert ID for user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit create user transaction: %w", err)
	}
	return id, nil
}

// GetUserByID retrieves a user by their ID. Returns nil when not found.
func (r *mysqlUserRepository) GetUserByID(id int64) (*model.User, error) {
	query := "SELECT id, nombres, apellidos, email, dni, celular, pais, departamento, direccion, password_hash, fecha_registro FROM users WHERE id = ?"
	row := r.db.QueryRow(query, id)
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Nombres, &user.Apellidos, &user.Email, &user.DNI,
		&user.Celular, &user.Pais, &user.Departamento, &user.Direccion,
		&user.PasswordHash, &user.FechaRegistro)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for ID %d: %w", id, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address. Returns nil when
// not found.
func (r *mysqlUserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := "SELECT id, nombres, apellidos, email, dni, celular, pais, departamento, direccion, password_hash, fecha_registro FROM users WHERE email = ?"
	row := r.db.QueryRow(query, email)
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Nombres, &user.Apellidos, &user.Email, &user.DNI,
		&user.Celular, &user.Pais, &user.Departamento, &user.Direccion,
		&user.PasswordHash, &user.FechaRegistro)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for email %s: %w", email, err)
	}
	return user, nil
}
