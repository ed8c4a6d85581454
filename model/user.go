package model

import (
	"database/sql"
	"time"
)

// User represents a registered account. Field names follow the users table;
// email and dni are unique across all users.
type User struct {
	ID            int64          `json:"id"`
	Nombres       string         `json:"nombres"`
	Apellidos     string         `json:"apellidos"`
	Email         string         `json:"email"`
	DNI           string         `json:"dni"`
	Celular       sql.NullString `json:"-"`
	Pais          sql.NullString `json:"-"`
	Departamento  sql.NullString `json:"-"`
	Direccion     sql.NullString `json:"-"`
	PasswordHash  string         `json:"-"` // Not exposed in API responses
	FechaRegistro time.Time      `json:"fechaRegistro"`
}
