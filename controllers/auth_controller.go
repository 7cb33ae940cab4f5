package controllers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"go-smartagro/middleware"
	"go-smartagro/utils"
)

// AuthController handles registration and login.
type AuthController struct {
	DB        *sql.DB
	JWTSecret string
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(db *sql.DB, jwtSecret string) *AuthController {
	return &AuthController{DB: db, JWTSecret: jwtSecret}
}

// CredentialsRequest is the register/login payload.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns a signed token.
func (c *AuthController) Register(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	var count int
	if err := c.DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", req.Username).Scan(&count); err != nil {
		utils.InternalServerError(ctx, "database query failed")
		return
	}
	if count > 0 {
		utils.Conflict(ctx, "username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerError(ctx, "failed to hash password")
		return
	}

	result, err := c.DB.Exec("INSERT INTO users (username, password) VALUES (?, ?)", req.Username, string(hashed))
	if err != nil {
		utils.InternalServerError(ctx, "failed to create user")
		return
	}
	userID, err := result.LastInsertId()
	if err != nil {
		utils.InternalServerError(ctx, "failed to read user id")
		return
	}

	token, err := c.generateToken(int(userID))
	if err != nil {
		utils.InternalServerError(ctx, "failed to sign token")
		return
	}

	utils.Created(ctx, gin.H{
		"token":    token,
		"username": req.Username,
		"userId":   userID,
	})
}

// Login verifies credentials and returns a signed token.
func (c *AuthController) Login(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	var userID int
	var hashed string
	err := c.DB.QueryRow("SELECT id, password FROM users WHERE username = ?", req.Username).Scan(&userID, &hashed)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Unauthorized(ctx, "invalid username or password")
		} else {
			utils.InternalServerError(ctx, "database query failed")
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hashed), []byte(req.Password)) != nil {
		utils.Unauthorized(ctx, "invalid username or password")
		return
	}

	token, err := c.generateToken(userID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to sign token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":    token,
		"username": req.Username,
		"userId":   userID,
	})
}

// generateToken signs a 7-day token for the user.
func (c *AuthController) generateToken(userID int) (string, error) {
	claims := middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.JWTSecret))
}
