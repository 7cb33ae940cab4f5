package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	"go.uber.org/zap"

	"go-smartagro/config"
	"go-smartagro/controllers"
	"go-smartagro/lifecycle"
	"go-smartagro/middleware"
	"go-smartagro/services"
	"go-smartagro/speech"
)

// SetupRouter configures all routes.
func SetupRouter(
	db *sql.DB,
	cfg *config.Config,
	gemini *services.GeminiService,
	market *services.MarketService,
	weather *services.WeatherService,
	notifier services.Notifier,
	session *speech.SessionManager,
	runners *lifecycle.Registry,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.AllowAll())

	authController := controllers.NewAuthController(db, cfg.Server.JWTSecret)
	profileController := controllers.NewProfileController(db)
	tileController := controllers.NewTileController(db)
	noteController := controllers.NewNoteController(db)
	adviceController := controllers.NewAdviceController(db, gemini, runners, logger)
	inspectionController := controllers.NewInspectionController(gemini, runners, logger)
	marketController := controllers.NewMarketController(market, gemini)
	weatherController := controllers.NewWeatherController(db, weather, notifier)
	diseaseController := controllers.NewDiseaseController()
	speechController := controllers.NewSpeechController(gemini, session)

	public := r.Group("/")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.Server.JWTSecret))
	{
		protected.GET("/profile", profileController.GetProfile)
		protected.PUT("/profile", profileController.SaveProfile)
		protected.PUT("/profile/location", profileController.SaveFarmLocation)
		protected.GET("/profile/options", profileController.GetProfileOptions)

		protected.GET("/tiles", tileController.GetTiles)
		protected.PUT("/tiles", tileController.SaveTiles)
		protected.POST("/tiles/move", tileController.MoveTile)
		protected.POST("/tiles/toggle", tileController.ToggleTile)
		protected.POST("/tiles/reset", tileController.ResetTiles)

		protected.GET("/notepad", noteController.GetNote)
		protected.PUT("/notepad", noteController.SaveNote)
		protected.GET("/preferences", noteController.GetPreferences)
		protected.PUT("/preferences", noteController.SavePreferences)
		protected.POST("/reset", noteController.ResetApp)

		protected.POST("/sowing/advice", adviceController.SowingAdvice)
		protected.POST("/fertilizer/advice", adviceController.FertilizerAdvice)
		protected.POST("/calc/recommendations", adviceController.SmartCalcAdvice)
		protected.POST("/planner/advice", adviceController.PlannerAdvice)
		protected.GET("/news", adviceController.GetNews)
		protected.GET("/advice/:feature/status", adviceController.FeatureStatus)
		protected.POST("/advice/:feature/dismiss", adviceController.DismissFeatureError)

		protected.POST("/assistant/chat", adviceController.Chat)
		protected.GET("/assistant/history", adviceController.GetChatHistory)
		protected.DELETE("/assistant/history", adviceController.ClearChatHistory)

		protected.POST("/inspection/analyze", inspectionController.Analyze)
		protected.GET("/inspection/status", inspectionController.Status)
		protected.PUT("/inspection/result", inspectionController.UpdateResult)

		protected.GET("/market/prices", marketController.GetPrices)
		protected.GET("/market/summary", marketController.GetSummary)

		protected.GET("/weather", weatherController.GetWeather)
		protected.GET("/weather/alert", weatherController.GetFarmAlert)

		protected.GET("/diseases", diseaseController.GetDiseases)

		protected.POST("/speech/speak", speechController.Speak)
		protected.POST("/speech/cancel", speechController.CancelSpeech)
		protected.POST("/dictation/toggle", speechController.ToggleDictation)
		protected.POST("/dictation/event", speechController.DictationEvent)
		protected.GET("/dictation/state", speechController.DictationState)
	}

	return r
}
