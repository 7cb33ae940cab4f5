package controllers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-smartagro/services"
	"go-smartagro/utils"
)

// WeatherController handles the weather tile and farm alerts.
type WeatherController struct {
	DB       *sql.DB
	Weather  *services.WeatherService
	Notifier services.Notifier
}

// NewWeatherController creates a new WeatherController instance.
func NewWeatherController(db *sql.DB, weather *services.WeatherService, notifier services.Notifier) *WeatherController {
	return &WeatherController{DB: db, Weather: weather, Notifier: notifier}
}

// GetWeather returns current conditions. Explicit lat/lon query
// parameters win; otherwise the saved profile district is used,
// defaulting to Pune. A failed fetch serves the fallback dataset, so
// the tile always renders.
func (c *WeatherController) GetWeather(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var lat, lon *float64
	if latStr, lonStr := ctx.Query("lat"), ctx.Query("lon"); latStr != "" && lonStr != "" {
		latVal, errLat := strconv.ParseFloat(latStr, 64)
		lonVal, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			utils.BadRequest(ctx, "invalid coordinates")
			return
		}
		lat, lon = &latVal, &lonVal
	}

	district := ""
	if lat == nil {
		profile, err := loadProfile(c.DB, userID)
		if err != nil {
			utils.InternalServerError(ctx, "failed to load profile")
			return
		}
		district = profile.District
	}

	utils.Success(ctx, c.Weather.Current(ctx.Request.Context(), district, lat, lon))
}

// GetFarmAlert checks conditions at the saved farm coordinates and
// returns an extreme-weather alert when one fires. Without saved
// coordinates, or in calm conditions, the alert is null. A
// notification is pushed only when the user granted permission.
func (c *WeatherController) GetFarmAlert(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	profile, err := loadProfile(c.DB, userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load profile")
		return
	}
	if !profile.HasFarmLocation() {
		utils.Success(ctx, gin.H{"alert": nil})
		return
	}

	notifier := services.Notifier(services.NopNotifier{})
	var granted bool
	err = c.DB.QueryRow("SELECT notify_granted FROM preferences WHERE user_id = ?", userID).Scan(&granted)
	if err == nil && granted {
		notifier = c.Notifier
	}

	alert := c.Weather.FarmAlert(ctx.Request.Context(), *profile.FarmLat, *profile.FarmLng, notifier)
	utils.Success(ctx, gin.H{"alert": alert})
}
