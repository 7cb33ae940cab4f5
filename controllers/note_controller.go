package controllers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"go-smartagro/utils"
)

// NoteController handles the notepad text and the user preferences,
// and the full app reset.
type NoteController struct {
	DB *sql.DB
}

// NewNoteController creates a new NoteController instance.
func NewNoteController(db *sql.DB) *NoteController {
	return &NoteController{DB: db}
}

// GetNote returns the free-form notepad text; empty until first save.
func (c *NoteController) GetNote(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var content string
	err := c.DB.QueryRow("SELECT content FROM notes WHERE user_id = ?", userID).Scan(&content)
	if err != nil && err != sql.ErrNoRows {
		utils.InternalServerError(ctx, "failed to load note")
		return
	}
	utils.Success(ctx, gin.H{"content": content})
}

// NoteRequest is the notepad save payload. An empty string is a valid
// note.
type NoteRequest struct {
	Content string `json:"content"`
}

// SaveNote replaces the notepad text. Last write wins.
func (c *NoteController) SaveNote(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	_, err := c.DB.Exec(
		"INSERT INTO notes (user_id, content) VALUES (?, ?) ON DUPLICATE KEY UPDATE content = VALUES(content)",
		userID, req.Content,
	)
	if err != nil {
		utils.InternalServerError(ctx, "failed to save note")
		return
	}
	utils.Success(ctx, gin.H{"content": req.Content})
}

// Preferences is the small per-user settings record.
type Preferences struct {
	Theme         string `json:"theme"`
	NotifyGranted bool   `json:"notifyGranted"`
}

// GetPreferences returns the saved preferences, defaulting to the
// light theme with notifications off.
func (c *NoteController) GetPreferences(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	prefs := Preferences{Theme: "light"}
	err := c.DB.QueryRow("SELECT theme, notify_granted FROM preferences WHERE user_id = ?", userID).
		Scan(&prefs.Theme, &prefs.NotifyGranted)
	if err != nil && err != sql.ErrNoRows {
		utils.InternalServerError(ctx, "failed to load preferences")
		return
	}
	// Anything but an explicit dark theme loads as light.
	if prefs.Theme != "dark" {
		prefs.Theme = "light"
	}
	utils.Success(ctx, prefs)
}

// PreferencesRequest is the preferences save payload.
type PreferencesRequest struct {
	Theme         string `json:"theme" binding:"required,oneof=light dark"`
	NotifyGranted bool   `json:"notifyGranted"`
}

// SavePreferences replaces the preferences record.
func (c *NoteController) SavePreferences(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req PreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	_, err := c.DB.Exec(
		`INSERT INTO preferences (user_id, theme, notify_granted) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE theme = VALUES(theme), notify_granted = VALUES(notify_granted)`,
		userID, req.Theme, req.NotifyGranted,
	)
	if err != nil {
		utils.InternalServerError(ctx, "failed to save preferences")
		return
	}
	utils.Success(ctx, Preferences{Theme: req.Theme, NotifyGranted: req.NotifyGranted})
}

// ResetApp deletes every stored record for the user: profile, tile
// layout, notes and preferences. The account itself survives.
func (c *NoteController) ResetApp(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	tx, err := c.DB.Begin()
	if err != nil {
		utils.InternalServerError(ctx, "failed to start reset")
		return
	}

	for _, table := range []string{"profiles", "tiles", "notes", "preferences"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE user_id = ?", userID); err != nil {
			tx.Rollback()
			utils.InternalServerError(ctx, "failed to reset app data")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		utils.InternalServerError(ctx, "failed to reset app data")
		return
	}
	utils.Success(ctx, gin.H{"reset": true})
}
