package controllers

import (
	"errors"
	"net/http"

	"github.com/deividev5/Daily-Diet/config"
	"github.com/deividev5/Daily-Diet/middlewares"
	"github.com/deividev5/Daily-Diet/services"

	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge is 7 days, in seconds.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type CreateUserInput struct {
	Name string `json:"name"`
}

// CreateUser handles POST /users. Without a session cookie it creates a new
// user and hands the issued token back as an httpOnly cookie on "/" valid
// for seven days. With a cookie it returns the existing user, renaming it
// when the body carries a different name. A cookie that matches no user is
// rejected like a missing credential.
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	token, _ := c.Cookie(middlewares.SessionCookie)

	user, issued, err := services.NewSessionService(config.DB).ResolveOrCreate(token, input.Name)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: unknown session"})
			return
		}
		config.Log.WithError(err).Error("resolve session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if issued {
		c.SetCookie(middlewares.SessionCookie, user.SessionToken, sessionCookieMaxAge, "/", "", false, true)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User session ready",
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
		},
	})
}
