package db

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/JoseTorresAguirre/back-game/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database.")
	return nil
}

// InitDB initializes the database schema, creating the users and nicks
// tables if they don't exist. There is no migration versioning.
func InitDB() error {
	if err := createUsersTable(); err != nil {
		return err
	}
	if err := createNicksTable(); err != nil {
		return err
	}
	log.Println("Database initialization completed.")
	return nil
}

func createUsersTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombres VARCHAR(50) NOT NULL,
		apellidos VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		dni VARCHAR(20) NOT NULL UNIQUE,
		celular VARCHAR(15),
		pais VARCHAR(50),
		departamento VARCHAR(50),
		direccion VARCHAR(100),
		password_hash VARCHAR(200) NOT NULL,
		fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := DB.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	log.Println("Users table initialized successfully (or already exists).")
	return nil
}

func createNicksTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS nicks (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		nick VARCHAR(255) NOT NULL,
		CONSTRAINT fk_user_nicks FOREIGN KEY (user_id) REFERENCES users(id)
	);
	`
	_, err := DB.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create nicks table: %w", err)
	}
	log.Println("Nicks table initialized successfully (or already exists).")
	return nil
}
