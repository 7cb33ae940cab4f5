package controllers

import (
	"database/sql"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"go-smartagro/models"
	"go-smartagro/utils"
)

// ProfileController handles the farmer profile record.
type ProfileController struct {
	DB *sql.DB
}

// NewProfileController creates a new ProfileController instance.
func NewProfileController(db *sql.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GetProfile returns the saved profile, or the default when nothing
// was saved or the stored document is corrupt.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	document, err := loadDocument(c.DB, "profiles", userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load profile")
		return
	}
	utils.Success(ctx, models.DecodeProfile(document))
}

// SaveProfile replaces the whole profile record.
func (c *ProfileController) SaveProfile(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var profile models.FarmerProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if profile.PrimaryCrops == nil {
		profile.PrimaryCrops = []string{}
	}

	document, err := json.Marshal(profile)
	if err != nil {
		utils.InternalServerError(ctx, "failed to encode profile")
		return
	}
	if err := saveDocument(c.DB, "profiles", userID, string(document)); err != nil {
		utils.InternalServerError(ctx, "failed to save profile")
		return
	}
	utils.Success(ctx, profile)
}

// FarmLocationRequest carries farm coordinates captured on the client.
type FarmLocationRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// SaveFarmLocation stores the farm coordinates on the profile. The
// rest of the record is untouched.
func (c *ProfileController) SaveFarmLocation(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req FarmLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	document, err := loadDocument(c.DB, "profiles", userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load profile")
		return
	}
	profile := models.DecodeProfile(document)
	profile.FarmLat = &req.Lat
	profile.FarmLng = &req.Lng

	updated, err := json.Marshal(profile)
	if err != nil {
		utils.InternalServerError(ctx, "failed to encode profile")
		return
	}
	if err := saveDocument(c.DB, "profiles", userID, string(updated)); err != nil {
		utils.InternalServerError(ctx, "failed to save profile")
		return
	}
	utils.Success(ctx, profile)
}

// GetProfileOptions returns the fixed form option lists.
func (c *ProfileController) GetProfileOptions(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"districts": models.MaharashtraDistricts,
		"soilTypes": models.SoilTypes,
		"seasons":   models.Seasons,
	})
}

// loadProfile is the internal read used by other controllers.
func loadProfile(db *sql.DB, userID int) (models.FarmerProfile, error) {
	document, err := loadDocument(db, "profiles", userID)
	if err != nil {
		return models.DefaultProfile(), err
	}
	return models.DecodeProfile(document), nil
}
