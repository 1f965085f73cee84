package handlers

import (
	"log"
	"net/http"

	"github.com/cueline/backend/internal/accounts"
	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// AdminLogin verifies credentials against admin_accounts and issues a JWT
func AdminLogin(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
			return
		}

		admin, err := accounts.ValidateCredentials(db, req.Username, req.Password)
		if err != nil {
			log.Printf("[ADMIN] Login failed for %s: %v", req.Username, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := middleware.IssueAdminToken(cfg, admin.Username)
		if err != nil {
			log.Printf("[ADMIN] Token issue failed for %s: %v", admin.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"username":     admin.Username,
			"display_name": admin.DisplayName,
		})
	}
}
