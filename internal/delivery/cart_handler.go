package delivery

import (
	"net/http"

	"cloudmart_service/internal/domain"
	"cloudmart_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.ListCart)
		cart.POST("", h.AddToCart)
		cart.DELETE("/:id", h.RemoveFromCart)
	}
}

func (h *CartHandler) ListCart(c *gin.Context) {
	items, err := h.useCase.ListCart(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list cart: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve cart: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", items)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil || item == nil {
		h.log.Errorf("Failed to bind JSON for add to cart: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: expected a JSON object")
		return
	}
	if err := EnsureDocumentID(item); err != nil {
		h.log.Warnf("Rejected cart item: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.useCase.AddToCart(c.Request.Context(), item)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to add cart item %q: %v", item.ID(), err)
		ErrorResponse(c, statusCode, "Failed to add item to cart: "+err.Error())
		return
	}

	h.log.Infof("Cart item added: ID %s", item.ID())
	SuccessResponse(c, http.StatusCreated, "Item added to cart", gin.H{"status": result.Status, "id": item.ID()})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id := c.Param("id")

	result, err := h.useCase.RemoveFromCart(c.Request.Context(), id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to remove cart item %s: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to remove item from cart: "+err.Error())
		return
	}

	h.log.Infof("Cart item removed: ID %s", id)
	SuccessResponse(c, http.StatusOK, "Item removed from cart", result)
}
