package handlers

import (
	"net/http"

	"github.com/Modassir22/dream-home-hub/core"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

type PlotHandler struct {
	svc services.PlotService
}

func NewPlotHandler(svc services.PlotService) *PlotHandler {
	return &PlotHandler{svc: svc}
}

// List handles GET /plots?search=&price=&size=&status=.
func (h *PlotHandler) List(c *gin.Context) {
	var f core.PlotFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err.Error())
		return
	}
	items, err := h.svc.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PlotHandler) Featured(c *gin.Context) {
	items, err := h.svc.Featured()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PlotHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /admin/plots (and its /plots alias).
func (h *PlotHandler) Create(c *gin.Context) {
	var req models.PlotRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PlotHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdatePlotRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PlotHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Plot")
}
