package handlers

import (
	"net/http"

	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the contact and stats singletons.
type SiteHandler struct {
	svc services.SiteService
}

func NewSiteHandler(svc services.SiteService) *SiteHandler {
	return &SiteHandler{svc: svc}
}

func (h *SiteHandler) Contact(c *gin.Context) {
	ci, err := h.svc.Contact()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ci)
}

func (h *SiteHandler) UpdateContact(c *gin.Context) {
	var req models.ContactInfoRequest
	if !bindJSON(c, &req) {
		return
	}
	ci, err := h.svc.UpdateContact(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ci)
}

func (h *SiteHandler) Stats(c *gin.Context) {
	st, err := h.svc.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *SiteHandler) UpdateStats(c *gin.Context) {
	var req models.StatsRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.svc.UpdateStats(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
