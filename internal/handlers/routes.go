package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the curve and quote endpoints on group. Mutating
// routes run behind guard.
func RegisterRoutes(group *gin.RouterGroup, curves *CurveHandler, quotes *QuoteHandler, guard gin.HandlerFunc) {
	// Curve routes
	c := group.Group("/curves")
	c.GET("", curves.ListCurves)
	c.GET("/query", curves.FindCurve)
	c.GET("/dates", curves.ListCurveDates)
	c.GET("/:id", curves.GetCurve)
	c.POST("", guard, curves.CreateCurve)
	c.PUT("/:id", guard, curves.UpdateCurve)
	c.DELETE("", guard, curves.DeleteCurve)

	// Quote routes
	q := group.Group("/quotes")
	q.GET("", quotes.GetQuotes)
	q.POST("", guard, quotes.SaveQuotes)
	q.POST("/roll", guard, quotes.RollCurve)
}
