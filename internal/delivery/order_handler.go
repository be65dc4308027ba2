package delivery

import (
	"net/http"

	"cloudmart_service/internal/domain"
	"cloudmart_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase usecase.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil || order == nil {
		h.log.Errorf("Failed to bind JSON for create order: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: expected a JSON object")
		return
	}
	if err := EnsureDocumentID(order); err != nil {
		h.log.Warnf("Rejected order: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.useCase.CreateOrder(c.Request.Context(), order)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create order %q: %v", order.ID(), err)
		ErrorResponse(c, statusCode, "Failed to create order: "+err.Error())
		return
	}

	h.log.Infof("Order %s created successfully", order.ID())
	SuccessResponse(c, http.StatusCreated, "Order created successfully", gin.H{"status": result.Status, "id": order.ID()})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.useCase.ListOrders(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list orders: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve orders: "+err.Error())
		return
	}

	h.log.Infof("Retrieved %d orders", len(orders))
	if len(orders) == 0 {
		SuccessResponse(c, http.StatusOK, "No orders found", []domain.Order{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}
