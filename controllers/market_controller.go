package controllers

import (
	"github.com/gin-gonic/gin"

	"go-smartagro/services"
	"go-smartagro/utils"
)

// MarketController handles the commodity price board.
type MarketController struct {
	Market *services.MarketService
	Gemini *services.GeminiService
}

// NewMarketController creates a new MarketController instance.
func NewMarketController(market *services.MarketService, gemini *services.GeminiService) *MarketController {
	return &MarketController{Market: market, Gemini: gemini}
}

// GetPrices returns the current quote board. ?refresh=1 busts the
// cache and forces a live fetch.
func (c *MarketController) GetPrices(ctx *gin.Context) {
	refresh := ctx.Query("refresh") == "1"
	utils.Success(ctx, c.Market.Prices(ctx.Request.Context(), refresh))
}

// GetSummary returns the AI market pulse report over the current
// board. Always succeeds: failures degrade to canned Marathi lines.
func (c *MarketController) GetSummary(ctx *gin.Context) {
	prices := c.Market.Prices(ctx.Request.Context(), false)
	summary := c.Market.Summary(ctx.Request.Context(), c.Gemini, prices)
	utils.Success(ctx, gin.H{"summary": summary})
}
