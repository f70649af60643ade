package handlers

import (
	"net/http"
	"testing"

	"github.com/Modassir22/dream-home-hub/mocks"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupWishlist(svc *mocks.WishlistServiceMock, caller *models.User) *gin.Engine {
	r := newEngine()
	h := NewWishlistHandler(svc)
	g := r.Group("/wishlist", asUser(caller))
	g.GET("", h.List)
	g.POST("", h.Add)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Remove)
	g.GET("/check/:plotId", h.Check)

	a := NewAdminWishlistHandler(svc)
	ag := r.Group("/admin/wishlists")
	ag.GET("", a.All)
	ag.GET("/stats", a.Stats)
	ag.GET("/plot/:plotId", a.ByPlot)
	ag.GET("/user/:userId", a.ByUser)
	return r
}

var alice = &models.User{ID: 7, Username: "alice", Role: "user"}

func TestWishlistAdd_UsesCaller(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)
	req := models.AddWishlistRequest{PlotID: 3, Notes: "corner"}
	svc.On("Add", uint(7), req).Return(&models.Wishlist{ID: 1, UserID: 7, PlotID: 3, Status: "interested", Notes: "corner"}, nil)

	w := doJSON(setupWishlist(svc, alice), http.MethodPost, "/wishlist", req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "interested", decode(t, w)["status"])
}

func TestWishlistAdd_MissingPlotIDIs400(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)

	w := doJSON(setupWishlist(svc, alice), http.MethodPost, "/wishlist", map[string]string{"notes": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestWishlistAdd_DuplicateIs409(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)
	svc.On("Add", uint(7), mock.Anything).Return(nil, &services.Error{Kind: services.ErrConflict, Msg: "Plot already in wishlist"})

	w := doJSON(setupWishlist(svc, alice), http.MethodPost, "/wishlist", models.AddWishlistRequest{PlotID: 3})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Plot already in wishlist"}`, w.Body.String())
}

func TestWishlistUpdate_InvalidStatusIs400(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)

	w := doJSON(setupWishlist(svc, alice), http.MethodPut, "/wishlist/1", map[string]string{"status": "sold"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestWishlistUpdate_NotOwnedIs404(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)
	status := "contacted"
	svc.On("Update", uint(7), uint(9), models.UpdateWishlistRequest{Status: &status}).
		Return(nil, &services.Error{Kind: services.ErrNotFound, Msg: "Wishlist item not found"})

	w := doJSON(setupWishlist(svc, alice), http.MethodPut, "/wishlist/9", map[string]string{"status": "contacted"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistRemove(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)
	svc.On("Remove", uint(7), uint(1)).Return(nil)

	w := doJSON(setupWishlist(svc, alice), http.MethodDelete, "/wishlist/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Removed from wishlist"}`, w.Body.String())
}

func TestWishlistCheck(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)
	id := uint(4)
	svc.On("Check", uint(7), uint(3)).Return(&models.WishlistCheck{InWishlist: true, WishlistID: &id}, nil)
	svc.On("Check", uint(7), uint(5)).Return(&models.WishlistCheck{}, nil)
	r := setupWishlist(svc, alice)

	w := doJSON(r, http.MethodGet, "/wishlist/check/3", nil)
	assert.JSONEq(t, `{"inWishlist":true,"wishlistId":4}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/wishlist/check/5", nil)
	assert.JSONEq(t, `{"inWishlist":false,"wishlistId":null}`, w.Body.String())
}

func TestAdminWishlist_Views(t *testing.T) {
	svc := new(mocks.WishlistServiceMock)
	svc.On("ByPlot", uint(3)).Return([]models.Wishlist{{ID: 1, PlotID: 3, User: &models.User{ID: 7, Username: "alice"}}}, nil)
	svc.On("ByUser", uint(7)).Return([]models.Wishlist{}, nil)
	svc.On("Stats").Return(&models.WishlistStats{
		Total:    2,
		ByStatus: []models.WishlistStatusCount{{Status: "interested", Count: 2}},
		TopPlots: []models.TopPlot{{PlotID: 3, Count: 2}},
	}, nil)
	r := setupWishlist(svc, alice)

	w := doJSON(r, http.MethodGet, "/admin/wishlists/plot/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	w = doJSON(r, http.MethodGet, "/admin/wishlists/user/7", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/admin/wishlists/stats", nil)
	assert.JSONEq(t, `{"total":2,"byStatus":[{"status":"interested","count":2}],"topPlots":[{"plotId":3,"count":2,"plot":null}]}`, w.Body.String())
}
