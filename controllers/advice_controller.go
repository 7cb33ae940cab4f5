package controllers

import (
	"database/sql"
	"sync"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid"
	"go.uber.org/zap"

	"go-smartagro/lifecycle"
	"go-smartagro/models"
	"go-smartagro/services"
	"go-smartagro/utils"
)

// Feature keys of the lifecycle-tracked advice screens.
const (
	FeatureSowing     = "sowing"
	FeatureFertilizer = "fertilizer"
	FeatureSmartCalc  = "smart_calc"
	FeaturePlanner    = "planner"
	FeatureInspection = "inspection"
)

// adviceFeatures are the keys accepted by the status and dismiss
// endpoints.
var adviceFeatures = map[string]bool{
	FeatureSowing:     true,
	FeatureFertilizer: true,
	FeatureSmartCalc:  true,
	FeaturePlanner:    true,
	FeatureInspection: true,
}

// AdviceController handles the AI advisory features: sowing planner,
// fertilizer manager, smart crop calculator, future planner, news and
// the chat assistant.
type AdviceController struct {
	DB      *sql.DB
	Gemini  *services.GeminiService
	Runners *lifecycle.Registry
	Logger  *zap.Logger

	chatMu   sync.Mutex
	chatLogs map[int][]models.ChatMessage
}

// NewAdviceController creates a new AdviceController instance.
func NewAdviceController(db *sql.DB, gemini *services.GeminiService, runners *lifecycle.Registry, logger *zap.Logger) *AdviceController {
	return &AdviceController{
		DB:       db,
		Gemini:   gemini,
		Runners:  runners,
		Logger:   logger,
		chatLogs: make(map[int][]models.ChatMessage),
	}
}

// run executes one advice request through its feature runner: a
// duplicate submission while one is in flight gets 409, completion
// responds with the lifecycle snapshot either way.
func (c *AdviceController) run(ctx *gin.Context, feature string, call func() (interface{}, error)) {
	userID := ctx.GetInt("userID")
	runner := c.Runners.For(userID, feature, nil)

	if err := runner.Begin(); err != nil {
		utils.Conflict(ctx, "request already in flight")
		return
	}

	result, err := call()
	if err != nil {
		message, quota := services.LocalizedAIError(err)
		c.Logger.Warn("advice request failed", zap.String("feature", feature), zap.Error(err))
		runner.Fail(message, quota)
	} else {
		runner.Succeed(result)
	}
	utils.Success(ctx, runner.Status())
}

// SowingAdvice handles the sowing planner form. The land area
// pre-fills from the saved profile when the form leaves it blank.
func (c *AdviceController) SowingAdvice(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req services.SowingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if req.LandArea == "" {
		profile, err := loadProfile(c.DB, userID)
		if err != nil {
			utils.InternalServerError(ctx, "failed to load profile")
			return
		}
		req.LandArea = profile.LandArea
	}
	c.run(ctx, FeatureSowing, func() (interface{}, error) {
		return c.Gemini.SowingAdvice(ctx.Request.Context(), req)
	})
}

// FertilizerAdvice handles the fertilizer manager form.
func (c *AdviceController) FertilizerAdvice(ctx *gin.Context) {
	var req services.FertilizerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	c.run(ctx, FeatureFertilizer, func() (interface{}, error) {
		return c.Gemini.FertilizerAdvice(ctx.Request.Context(), req)
	})
}

// SmartCalcAdvice handles the smart crop calculator form.
func (c *AdviceController) SmartCalcAdvice(ctx *gin.Context) {
	var req services.CalcRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	c.run(ctx, FeatureSmartCalc, func() (interface{}, error) {
		return c.Gemini.SmartAgroAdvice(ctx.Request.Context(), req)
	})
}

// PlannerAdvice produces long-term planning advice from the saved
// profile.
func (c *AdviceController) PlannerAdvice(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	profile, err := loadProfile(c.DB, userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load profile")
		return
	}
	c.run(ctx, FeaturePlanner, func() (interface{}, error) {
		return c.Gemini.FuturePlannerAdvice(ctx.Request.Context(), profile)
	})
}

// GetNews returns agricultural news for the user's district. Failures
// degrade to an empty list.
func (c *AdviceController) GetNews(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	profile, err := loadProfile(c.DB, userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load profile")
		return
	}

	news, err := c.Gemini.AgroNews(ctx.Request.Context(), profile.District)
	if err != nil {
		c.Logger.Warn("news fetch failed", zap.Error(err))
		news = []models.NewsItem{}
	}
	if news == nil {
		news = []models.NewsItem{}
	}
	utils.Success(ctx, news)
}

// ChatRequest is one user turn of the assistant conversation.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat appends the user turn, asks the assistant and appends its
// reply. AI failures come back as a bot message carrying the localized
// error text; the conversation itself never errors.
func (c *AdviceController) Chat(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	profile, err := loadProfile(c.DB, userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to load profile")
		return
	}

	c.appendChat(userID, "user", req.Message)

	reply, err := c.Gemini.Chat(ctx.Request.Context(), req.Message, profile)
	if err != nil {
		message, _ := services.LocalizedAIError(err)
		c.Logger.Warn("chat request failed", zap.Error(err))
		reply = message
	}
	botMessage := c.appendChat(userID, "bot", reply)

	utils.Success(ctx, botMessage)
}

// GetChatHistory returns the in-memory conversation for this session.
func (c *AdviceController) GetChatHistory(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	c.chatMu.Lock()
	history := make([]models.ChatMessage, len(c.chatLogs[userID]))
	copy(history, c.chatLogs[userID])
	c.chatMu.Unlock()

	utils.Success(ctx, history)
}

// ClearChatHistory discards the in-memory conversation.
func (c *AdviceController) ClearChatHistory(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	c.chatMu.Lock()
	delete(c.chatLogs, userID)
	c.chatMu.Unlock()

	utils.Success(ctx, gin.H{"cleared": true})
}

// appendChat adds one message to the user's conversation log.
func (c *AdviceController) appendChat(userID int, role, text string) models.ChatMessage {
	id, _ := gonanoid.Nanoid()
	message := models.ChatMessage{ID: id, Role: role, Text: text}

	c.chatMu.Lock()
	c.chatLogs[userID] = append(c.chatLogs[userID], message)
	c.chatMu.Unlock()

	return message
}

// FeatureStatus returns the lifecycle snapshot of one advice feature.
func (c *AdviceController) FeatureStatus(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	feature := ctx.Param("feature")
	if !adviceFeatures[feature] {
		utils.NotFound(ctx, "unknown feature")
		return
	}
	utils.Success(ctx, c.Runners.For(userID, feature, featureCaptions(feature)).Status())
}

// DismissFeatureError clears a displayed feature error.
func (c *AdviceController) DismissFeatureError(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	feature := ctx.Param("feature")
	if !adviceFeatures[feature] {
		utils.NotFound(ctx, "unknown feature")
		return
	}
	runner := c.Runners.For(userID, feature, featureCaptions(feature))
	runner.DismissError()
	utils.Success(ctx, runner.Status())
}
