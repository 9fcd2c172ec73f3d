package controllers

import (
	"errors"
	"net/http"

	"github.com/deividev5/Daily-Diet/config"
	"github.com/deividev5/Daily-Diet/middlewares"
	"github.com/deividev5/Daily-Diet/models"
	"github.com/deividev5/Daily-Diet/services"

	"github.com/gin-gonic/gin"
)

// currentUser resolves the session token placed in the context by
// SessionRequired. A token that matches no user gets the same 401 as a
// missing cookie; the response is written here, so callers just return when
// ok is false.
func currentUser(c *gin.Context) (*models.User, bool) {
	token := c.GetString(middlewares.SessionTokenKey)

	user, err := services.NewSessionService(config.DB).CurrentUser(token)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: unknown session"})
		} else {
			config.Log.WithError(err).Error("resolve session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return user, true
}

func CreateMeal(c *gin.Context) {
	var req services.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Create(user, req)
	if err != nil {
		config.Log.WithError(err).Error("create meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal created successfully",
		"meal":    meal,
	})
}

func ListMeals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	meals, err := services.NewMealService(config.DB).List(user)
	if err != nil {
		if errors.Is(err, services.ErrNoMeals) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No meals found."})
			return
		}
		config.Log.WithError(err).Error("list meals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func GetMeal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Get(user, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found."})
			return
		}
		config.Log.WithError(err).Error("get meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func UpdateMeal(c *gin.Context) {
	var req services.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Update(user, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found."})
			return
		}
		config.Log.WithError(err).Error("update meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal updated successfully",
		"meal":    meal,
	})
}

func DeleteMeal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	err := services.NewMealService(config.DB).Delete(user, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found."})
			return
		}
		config.Log.WithError(err).Error("delete meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
