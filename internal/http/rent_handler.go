package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type rentRequest struct {
	LeaseID         uuid.UUID   `json:"lease_id" binding:"required"`
	UtilityLeaseIDs []uuid.UUID `json:"utility_lease_ids"`
}

func (r rentRequest) input() service.RentInput {
	return service.RentInput{LeaseID: r.LeaseID, UtilityLeaseIDs: r.UtilityLeaseIDs}
}

// rentResponse adds the billed utility lease ids to a single rent.
type rentResponse struct {
	model.Rent
	UtilityLeaseIDs []uuid.UUID `json:"utility_lease_ids"`
}

func (h *Handler) rentWithLinks(c *gin.Context, status int, rent *model.Rent, err error) {
	if err != nil {
		h.handleError(c, err)
		return
	}
	ids, err := h.rents.UtilityLeaseIDs(c.Request.Context(), rent.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(status, rentResponse{Rent: *rent, UtilityLeaseIDs: ids})
}

func (h *Handler) createRent(c *gin.Context) {
	var req rentRequest
	if !bind(c, &req) {
		return
	}
	rent, err := h.rents.Create(c.Request.Context(), req.input())
	h.rentWithLinks(c, http.StatusCreated, rent, err)
}

func (h *Handler) listRents(c *gin.Context) {
	rents, err := h.rents.List(c.Request.Context())
	h.respond(c, http.StatusOK, rents, err)
}

func (h *Handler) getRent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rent, err := h.rents.Get(c.Request.Context(), id)
	h.rentWithLinks(c, http.StatusOK, rent, err)
}

func (h *Handler) updateRent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req rentRequest
	if !bind(c, &req) {
		return
	}
	rent, err := h.rents.Update(c.Request.Context(), id, req.input())
	h.rentWithLinks(c, http.StatusOK, rent, err)
}

func (h *Handler) deleteRent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rent, err := h.rents.Delete(c.Request.Context(), id)
	h.respond(c, http.StatusOK, rent, err)
}

func (h *Handler) exportRentRoll(c *gin.Context) {
	roll, err := h.rents.RentRoll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.roll.Generate(roll)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("rent_roll_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, content)
}

func (h *Handler) rentInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	statement, err := h.rents.Statement(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.invoices.Generate(*statement)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("invoice_%s.pdf", statement.Rent.ID)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, pdfContentType, content)
}
