package controllers

import "database/sql"

// loadDocument reads the per-user JSON document from a single-row
// table. A missing row returns the empty string.
func loadDocument(db *sql.DB, table string, userID int) (string, error) {
	var document string
	err := db.QueryRow("SELECT document FROM "+table+" WHERE user_id = ?", userID).Scan(&document)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return document, nil
}

// saveDocument upserts the per-user JSON document. Last write wins.
func saveDocument(db *sql.DB, table string, userID int, document string) error {
	_, err := db.Exec(
		"INSERT INTO "+table+" (user_id, document) VALUES (?, ?) ON DUPLICATE KEY UPDATE document = VALUES(document)",
		userID, document,
	)
	return err
}
