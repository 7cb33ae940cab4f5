package config

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// ConnectDB opens the MySQL connection.
func ConnectDB(dsn string) (*sql.DB, error) {
	return sql.Open("mysql", dsn)
}

// InitDB connects, pings and migrates the database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := ConnectDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err = autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// autoMigrate runs all pending migrations.
func autoMigrate(db *sql.DB) error {
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	for _, migration := range getMigrations() {
		if err := runMigrationIfNotExists(db, migration); err != nil {
			return fmt.Errorf("failed to run migration %s: %v", migration.Name, err)
		}
	}

	return nil
}

// Migration is a named, one-shot schema change.
type Migration struct {
	Name string
	SQL  string
}

// createMigrationsTable tracks which migrations already ran.
func createMigrationsTable(db *sql.DB) error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	_, err := db.Exec(createSQL)
	return err
}

// getMigrations lists all migrations in order.
func getMigrations() []Migration {
	return []Migration{
		{
			Name: "001_create_users_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INT AUTO_INCREMENT PRIMARY KEY,
				username VARCHAR(255) UNIQUE,
				password VARCHAR(255),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
			`,
		},
		{
			Name: "002_create_profiles_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS profiles (
				user_id INT PRIMARY KEY,
				document LONGTEXT,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
			`,
		},
		{
			Name: "003_create_tiles_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS tiles (
				user_id INT PRIMARY KEY,
				document LONGTEXT,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
			`,
		},
		{
			Name: "004_create_notes_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS notes (
				user_id INT PRIMARY KEY,
				content LONGTEXT,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
			`,
		},
		{
			Name: "005_create_preferences_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS preferences (
				user_id INT PRIMARY KEY,
				theme VARCHAR(20) DEFAULT 'light',
				notify_granted BOOLEAN DEFAULT FALSE,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
			`,
		},
	}
}

// runMigrationIfNotExists executes a migration exactly once.
func runMigrationIfNotExists(db *sql.DB, migration Migration) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name).Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	if _, err := db.Exec(migration.SQL); err != nil {
		return err
	}

	_, err = db.Exec("INSERT INTO migrations (name) VALUES (?)", migration.Name)
	return err
}
