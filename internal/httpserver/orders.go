package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"roastery-admin/internal/domain"
	ordersvc "roastery-admin/internal/service/order"

	"github.com/gin-gonic/gin"
)

type statusUpdateRequest struct {
	Status     string `json:"status"`
	TrackingID string `json:"trackingId"`
}

func createOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		if len(in.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "items required"})
			return
		}
		if in.TotalCents <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "total amount must be positive"})
			return
		}

		result, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			// The creation path forwards the underlying message.
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"orderId":       result.OrderID,
			"orderNumber":   result.OrderNumber,
			"customerId":    result.CustomerID,
			"addressId":     result.AddressID,
			"isNewCustomer": result.IsNewCustomer,
			"isNewAddress":  result.IsNewAddress,
			"message":       "Order placed successfully",
		})
	}
}

func getOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func updateOrderStatusHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		if status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		if !domain.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), status, req.TrackingID)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		}
	}
}
