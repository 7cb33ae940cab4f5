package controllers

import (
	"database/sql"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"go-smartagro/models"
	"go-smartagro/utils"
)

// TileController handles the dashboard tile layout.
type TileController struct {
	DB *sql.DB
}

// NewTileController creates a new TileController instance.
func NewTileController(db *sql.DB) *TileController {
	return &TileController{DB: db}
}

// GetTiles returns the saved layout, or the defaults when nothing was
// saved or the stored document is corrupt.
func (c *TileController) GetTiles(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	document, err := loadDocument(c.DB, "tiles", userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load tiles")
		return
	}
	utils.Success(ctx, models.DecodeTiles(document))
}

// SaveTiles replaces the whole layout. Duplicate tile ids are rejected.
func (c *TileController) SaveTiles(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var tiles []models.DashboardTile
	if err := ctx.ShouldBindJSON(&tiles); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if len(tiles) == 0 {
		utils.BadRequest(ctx, "tile layout cannot be empty")
		return
	}
	if !models.ValidateTiles(tiles) {
		utils.UnprocessableEntity(ctx, "tile ids must be unique")
		return
	}

	if err := c.persist(ctx, userID, tiles); err == nil {
		utils.Success(ctx, tiles)
	}
}

// MoveTileRequest reorders one tile by a single step.
type MoveTileRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// MoveTile swaps a tile with its neighbor. Moving past either edge is
// a no-op that still returns the layout.
func (c *TileController) MoveTile(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req MoveTileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	document, err := loadDocument(c.DB, "tiles", userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load tiles")
		return
	}
	tiles := models.DecodeTiles(document)
	if req.Direction == "up" {
		tiles = models.MoveTileUp(tiles, req.Index)
	} else {
		tiles = models.MoveTileDown(tiles, req.Index)
	}

	if err := c.persist(ctx, userID, tiles); err == nil {
		utils.Success(ctx, tiles)
	}
}

// ToggleTileRequest flips one tile's visibility.
type ToggleTileRequest struct {
	ID string `json:"id" binding:"required"`
}

// ToggleTile flips the visibility of the tile with the given id.
func (c *TileController) ToggleTile(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req ToggleTileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	document, err := loadDocument(c.DB, "tiles", userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load tiles")
		return
	}
	tiles := models.ToggleTileVisibility(models.DecodeTiles(document), req.ID)

	if err := c.persist(ctx, userID, tiles); err == nil {
		utils.Success(ctx, tiles)
	}
}

// ResetTiles restores the default layout.
func (c *TileController) ResetTiles(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	tiles := models.DefaultTiles()
	if err := c.persist(ctx, userID, tiles); err == nil {
		utils.Success(ctx, tiles)
	}
}

// persist writes the layout, reporting the HTTP error itself when the
// write fails.
func (c *TileController) persist(ctx *gin.Context, userID int, tiles []models.DashboardTile) error {
	document, err := json.Marshal(tiles)
	if err != nil {
		utils.InternalServerError(ctx, "failed to encode tiles")
		return err
	}
	if err := saveDocument(c.DB, "tiles", userID, string(document)); err != nil {
		utils.InternalServerError(ctx, "failed to save tiles")
		return err
	}
	return nil
}
