package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func dashboardRefreshHandler(svc dashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Refresh(c.Request.Context()))
	}
}
