package handlers

import (
	"net/http"

	"github.com/Modassir22/dream-home-hub/global"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

// WishlistHandler serves /wishlist. Every route sits behind the auth guard,
// which sets the caller's id on the context.
type WishlistHandler struct {
	svc services.WishlistService
}

func NewWishlistHandler(svc services.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.svc.ListMine(c.GetUint(global.CtxUserIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var req models.AddWishlistRequest
	if !bindJSON(c, &req) {
		return
	}
	w, err := h.svc.Add(c.GetUint(global.CtxUserIDKey), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WishlistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateWishlistRequest
	if !bindJSON(c, &req) {
		return
	}
	w, err := h.svc.Update(c.GetUint(global.CtxUserIDKey), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.GetUint(global.CtxUserIDKey), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Removed from wishlist"})
}

// Check handles GET /wishlist/check/:plotId.
func (h *WishlistHandler) Check(c *gin.Context) {
	plotID, ok := pathID(c, "plotId")
	if !ok {
		return
	}
	out, err := h.svc.Check(c.GetUint(global.CtxUserIDKey), plotID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// AdminWishlistHandler serves the read-only /admin/wishlists views.
type AdminWishlistHandler struct {
	svc services.WishlistService
}

func NewAdminWishlistHandler(svc services.WishlistService) *AdminWishlistHandler {
	return &AdminWishlistHandler{svc: svc}
}

func (h *AdminWishlistHandler) All(c *gin.Context) {
	items, err := h.svc.All()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminWishlistHandler) ByPlot(c *gin.Context) {
	plotID, ok := pathID(c, "plotId")
	if !ok {
		return
	}
	items, err := h.svc.ByPlot(plotID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminWishlistHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	items, err := h.svc.ByUser(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminWishlistHandler) Stats(c *gin.Context) {
	st, err := h.svc.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
