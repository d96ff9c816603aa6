package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"checkout-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const cartCacheTTL = 10 * time.Second

type Handler struct {
	cart     *services.CartService
	checkout *services.CheckoutService
	orders   *services.OrderService
	products *services.ProductService
	rdb      *redis.Client
}

func NewHandler(
	cart *services.CartService,
	checkout *services.CheckoutService,
	orders *services.OrderService,
	products *services.ProductService,
	rdb *redis.Client,
) *Handler {
	return &Handler{cart: cart, checkout: checkout, orders: orders, products: products, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/cart", h.AddToCart)
	r.GET("/cart", h.GetCart)
	r.PUT("/cart/:productId", h.UpdateCartItem)
	r.DELETE("/cart/:productId", h.RemoveCartItem)
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
}

// userID reads the identity the gateway injects after authenticating the
// request. This service trusts it; authn happens upstream.
func userID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid user identity"})
		return 0, false
	}
	return id, true
}

func cartCacheKey(uid uint64) string {
	return "cart:user:" + strconv.FormatUint(uid, 10)
}

func (h *Handler) AddToCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.cart.AddItem(c.Request.Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}

	h.rdb.Del(context.Background(), cartCacheKey(uid))
	c.JSON(http.StatusOK, gin.H{"message": "item added to cart", "item": item})
}

func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := cartCacheKey(uid)

	if b, err := h.rdb.Get(ctx, key).Result(); err == nil {
		var view services.CartView
		if json.Unmarshal([]byte(b), &view) == nil {
			c.JSON(http.StatusOK, view)
			return
		}
	}

	view, err := h.cart.GetCart(ctx, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if data, err := json.Marshal(view); err == nil {
		h.rdb.Set(ctx, key, data, cartCacheTTL)
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.cart.UpdateQuantity(c.Request.Context(), uid, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}

	h.rdb.Del(context.Background(), cartCacheKey(uid))
	c.JSON(http.StatusOK, gin.H{"message": "cart item updated", "item": item})
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.cart.RemoveItem(c.Request.Context(), uid, productID); err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}

	h.rdb.Del(context.Background(), cartCacheKey(uid))
	c.JSON(http.StatusOK, gin.H{"message": "item removed from cart"})
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	summary, err := h.checkout.PlaceOrder(c.Request.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order transaction failed"})
		}
		return
	}

	h.rdb.Del(context.Background(), cartCacheKey(uid))
	c.JSON(http.StatusCreated, gin.H{"message": "order placed successfully", "order": summary})
}

func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	products, total, err := h.products.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, product)
}
