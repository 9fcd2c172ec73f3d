package routes

import (
	"github.com/deividev5/Daily-Diet/controllers"
	"github.com/deividev5/Daily-Diet/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public session bootstrap (issues the cookie)
	r.POST("/users", controllers.CreateUser)

	// Protected meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.SessionRequired())
	{
		meals.POST("", controllers.CreateMeal)
		meals.GET("/all", controllers.ListMeals)
		meals.GET("/metric", controllers.GetMealMetrics)
		meals.GET("/:id", controllers.GetMeal)
		meals.PATCH("/:id", controllers.UpdateMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	return r
}
