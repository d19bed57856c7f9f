package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/service"
)

type utilityRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type utilityLeaseRequest struct {
	UtilityID  uuid.UUID `json:"utility_id" binding:"required"`
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	RentalRate float64   `json:"rental_rate" binding:"required,gt=0"`
}

func (r utilityLeaseRequest) input() service.UtilityLeaseInput {
	return service.UtilityLeaseInput{
		UtilityID:  r.UtilityID,
		PropertyID: r.PropertyID,
		RentalRate: r.RentalRate,
	}
}

func (h *Handler) createUtility(c *gin.Context) {
	var req utilityRequest
	if !bind(c, &req) {
		return
	}
	utility, err := h.utilities.Create(c.Request.Context(), service.UtilityInput(req))
	h.respond(c, http.StatusCreated, utility, err)
}

func (h *Handler) listUtilities(c *gin.Context) {
	utilities, err := h.utilities.List(c.Request.Context())
	h.respond(c, http.StatusOK, utilities, err)
}

func (h *Handler) getUtility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	utility, err := h.utilities.Get(c.Request.Context(), id)
	h.respond(c, http.StatusOK, utility, err)
}

func (h *Handler) updateUtility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req utilityRequest
	if !bind(c, &req) {
		return
	}
	utility, err := h.utilities.Update(c.Request.Context(), id, service.UtilityInput(req))
	h.respond(c, http.StatusOK, utility, err)
}

func (h *Handler) deleteUtility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	utility, err := h.utilities.Delete(c.Request.Context(), id)
	h.respond(c, http.StatusOK, utility, err)
}

func (h *Handler) listUtilityUtilityLeases(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	leases, err := h.utilities.ListLeasesByUtility(c.Request.Context(), id)
	h.respond(c, http.StatusOK, leases, err)
}

func (h *Handler) createUtilityLease(c *gin.Context) {
	var req utilityLeaseRequest
	if !bind(c, &req) {
		return
	}
	lease, err := h.utilities.CreateLease(c.Request.Context(), req.input())
	h.respond(c, http.StatusCreated, lease, err)
}

func (h *Handler) listUtilityLeases(c *gin.Context) {
	leases, err := h.utilities.ListLeases(c.Request.Context())
	h.respond(c, http.StatusOK, leases, err)
}

func (h *Handler) getUtilityLease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lease, err := h.utilities.GetLease(c.Request.Context(), id)
	h.respond(c, http.StatusOK, lease, err)
}

func (h *Handler) updateUtilityLease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req utilityLeaseRequest
	if !bind(c, &req) {
		return
	}
	lease, err := h.utilities.UpdateLease(c.Request.Context(), id, req.input())
	h.respond(c, http.StatusOK, lease, err)
}

func (h *Handler) deleteUtilityLease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lease, err := h.utilities.DeleteLease(c.Request.Context(), id)
	h.respond(c, http.StatusOK, lease, err)
}
