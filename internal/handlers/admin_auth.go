package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/zohir26/IC-sub001/internal/models"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func AdminLogin(db *mongo.Database, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/login"
		defer handlePanic(c, route)

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := requestContext(c)
		defer cancel()

		var admin models.Admin
		err := db.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
		if err != nil {
			respondError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(admin.PasswordHash),
			[]byte(req.Password),
		); err != nil {
			respondError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		claims := jwt.MapClaims{
			"sub":   admin.ID.Hex(),
			"role":  "admin",
			"email": admin.Email,
			"exp":   time.Now().Add(accessTTL).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   signed,
		})
	}
}
