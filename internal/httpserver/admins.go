package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"roastery-admin/internal/domain"
	adminsvc "roastery-admin/internal/service/admin"

	"github.com/gin-gonic/gin"
)

const adminPasswordMin = 6

func createAdminHandler(svc adminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in adminsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}

		switch {
		case strings.TrimSpace(in.Name) == "":
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name required"})
			return
		case strings.TrimSpace(in.Email) == "":
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email required"})
			return
		case len(strings.TrimSpace(in.Password)) < adminPasswordMin:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "password must be at least 6 characters"})
			return
		}

		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email already in use"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"uid":     created.ID,
			"message": "Admin created successfully",
		})
	}
}
