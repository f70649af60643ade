package handlers

import (
	"net/http"

	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves GET /team and the /admin/team CRUD.
type TeamHandler struct {
	svc services.TeamService
}

func NewTeamHandler(svc services.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

func (h *TeamHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req models.TeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Team member")
}

// TestimonialHandler serves /testimonials and the /admin/testimonials CRUD.
type TestimonialHandler struct {
	svc services.TestimonialService
}

func NewTestimonialHandler(svc services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req models.TestimonialRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Testimonial")
}
