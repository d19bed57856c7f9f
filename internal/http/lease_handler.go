package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/service"
)

type leaseRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required,notpast"`
	EndDate    string    `json:"end_date" binding:"required,notpast"`
}

func (r leaseRequest) input() (service.LeaseInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return service.LeaseInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return service.LeaseInput{}, err
	}
	return service.LeaseInput{
		PropertyID: r.PropertyID,
		CustomerID: r.CustomerID,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

func bindLease(c *gin.Context) (service.LeaseInput, bool) {
	var req leaseRequest
	if !bind(c, &req) {
		return service.LeaseInput{}, false
	}
	input, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return service.LeaseInput{}, false
	}
	return input, true
}

func (h *Handler) createLease(c *gin.Context) {
	input, ok := bindLease(c)
	if !ok {
		return
	}
	lease, err := h.leases.Create(c.Request.Context(), input)
	h.respond(c, http.StatusCreated, lease, err)
}

func (h *Handler) listLeases(c *gin.Context) {
	leases, err := h.leases.List(c.Request.Context())
	h.respond(c, http.StatusOK, leases, err)
}

func (h *Handler) getLease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lease, err := h.leases.Get(c.Request.Context(), id)
	h.respond(c, http.StatusOK, lease, err)
}

func (h *Handler) updateLease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindLease(c)
	if !ok {
		return
	}
	lease, err := h.leases.Update(c.Request.Context(), id, input)
	h.respond(c, http.StatusOK, lease, err)
}

func (h *Handler) deleteLease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lease, err := h.leases.Delete(c.Request.Context(), id)
	h.respond(c, http.StatusOK, lease, err)
}

func (h *Handler) listLeaseRents(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rents, err := h.rents.ListByLease(c.Request.Context(), id)
	h.respond(c, http.StatusOK, rents, err)
}
