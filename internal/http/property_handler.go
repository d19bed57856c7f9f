package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/service"
)

// available is only honoured on create.
type propertyRequest struct {
	OwnerID      uuid.UUID `json:"owner_id" binding:"required"`
	Name         string    `json:"name" binding:"required,max=255"`
	Address      string    `json:"address" binding:"required,max=255"`
	Description  string    `json:"description"`
	RentalRate   float64   `json:"rental_rate" binding:"required,gt=0"`
	Size         float64   `json:"size" binding:"required,gt=0"`
	ParkingSpots int       `json:"parking_spots" binding:"gte=0"`
	Photos       []string  `json:"photos" binding:"required,min=1,max=15,dive,required"`
	Available    *bool     `json:"available"`
}

func (r propertyRequest) input() service.PropertyInput {
	return service.PropertyInput{
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		Address:      r.Address,
		Description:  r.Description,
		RentalRate:   r.RentalRate,
		Size:         r.Size,
		ParkingSpots: r.ParkingSpots,
		Photos:       r.Photos,
		Available:    r.Available,
	}
}

type residenceRequest struct {
	propertyRequest
	Bedrooms    int    `json:"bedrooms" binding:"required,min=1"`
	Bathrooms   int    `json:"bathrooms" binding:"required,min=1"`
	Heating     string `json:"heating" binding:"required,heating"`
	PetFriendly bool   `json:"pet_friendly"`
	Furnished   bool   `json:"furnished"`
}

func (r residenceRequest) input() service.ResidenceInput {
	return service.ResidenceInput{
		PropertyInput: r.propertyRequest.input(),
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Heating:       model.HeatingType(r.Heating),
		PetFriendly:   r.PetFriendly,
		Furnished:     r.Furnished,
	}
}

type eventSpaceRequest struct {
	propertyRequest
	Capacity   int  `json:"capacity" binding:"required,gt=0"`
	HasKitchen bool `json:"has_kitchen"`
	HasBar     bool `json:"has_bar"`
}

func (r eventSpaceRequest) input() service.EventSpaceInput {
	return service.EventSpaceInput{
		PropertyInput: r.propertyRequest.input(),
		Capacity:      r.Capacity,
		HasKitchen:    r.HasKitchen,
		HasBar:        r.HasBar,
	}
}

type officeSpaceRequest struct {
	propertyRequest
	Capacity int `json:"capacity" binding:"required,gt=0"`
}

func (r officeSpaceRequest) input() service.OfficeSpaceInput {
	return service.OfficeSpaceInput{
		PropertyInput: r.propertyRequest.input(),
		Capacity:      r.Capacity,
	}
}

func (h *Handler) getProperty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	property, err := h.properties.Resolve(c.Request.Context(), id)
	h.respond(c, http.StatusOK, property, err)
}

func (h *Handler) listPropertyLeases(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	leases, err := h.leases.ListByProperty(c.Request.Context(), id)
	h.respond(c, http.StatusOK, leases, err)
}

func (h *Handler) listPropertyUtilityLeases(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	leases, err := h.utilities.ListLeasesByProperty(c.Request.Context(), id)
	h.respond(c, http.StatusOK, leases, err)
}

func (h *Handler) createResidence(c *gin.Context) {
	var req residenceRequest
	if !bind(c, &req) {
		return
	}
	residence, err := h.properties.CreateResidence(c.Request.Context(), req.input())
	h.respond(c, http.StatusCreated, residence, err)
}

func (h *Handler) listResidences(c *gin.Context) {
	residences, err := h.properties.ListResidences(c.Request.Context())
	h.respond(c, http.StatusOK, residences, err)
}

func (h *Handler) getResidence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	residence, err := h.properties.GetResidence(c.Request.Context(), id)
	h.respond(c, http.StatusOK, residence, err)
}

func (h *Handler) updateResidence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req residenceRequest
	if !bind(c, &req) {
		return
	}
	residence, err := h.properties.UpdateResidence(c.Request.Context(), id, req.input())
	h.respond(c, http.StatusOK, residence, err)
}

func (h *Handler) deleteResidence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	residence, err := h.properties.DeleteResidence(c.Request.Context(), id)
	h.respond(c, http.StatusOK, residence, err)
}

func (h *Handler) createEventSpace(c *gin.Context) {
	var req eventSpaceRequest
	if !bind(c, &req) {
		return
	}
	eventSpace, err := h.properties.CreateEventSpace(c.Request.Context(), req.input())
	h.respond(c, http.StatusCreated, eventSpace, err)
}

func (h *Handler) listEventSpaces(c *gin.Context) {
	eventSpaces, err := h.properties.ListEventSpaces(c.Request.Context())
	h.respond(c, http.StatusOK, eventSpaces, err)
}

func (h *Handler) getEventSpace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	eventSpace, err := h.properties.GetEventSpace(c.Request.Context(), id)
	h.respond(c, http.StatusOK, eventSpace, err)
}

func (h *Handler) updateEventSpace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req eventSpaceRequest
	if !bind(c, &req) {
		return
	}
	eventSpace, err := h.properties.UpdateEventSpace(c.Request.Context(), id, req.input())
	h.respond(c, http.StatusOK, eventSpace, err)
}

func (h *Handler) deleteEventSpace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	eventSpace, err := h.properties.DeleteEventSpace(c.Request.Context(), id)
	h.respond(c, http.StatusOK, eventSpace, err)
}

func (h *Handler) createOfficeSpace(c *gin.Context) {
	var req officeSpaceRequest
	if !bind(c, &req) {
		return
	}
	officeSpace, err := h.properties.CreateOfficeSpace(c.Request.Context(), req.input())
	h.respond(c, http.StatusCreated, officeSpace, err)
}

func (h *Handler) listOfficeSpaces(c *gin.Context) {
	officeSpaces, err := h.properties.ListOfficeSpaces(c.Request.Context())
	h.respond(c, http.StatusOK, officeSpaces, err)
}

func (h *Handler) getOfficeSpace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	officeSpace, err := h.properties.GetOfficeSpace(c.Request.Context(), id)
	h.respond(c, http.StatusOK, officeSpace, err)
}

func (h *Handler) updateOfficeSpace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req officeSpaceRequest
	if !bind(c, &req) {
		return
	}
	officeSpace, err := h.properties.UpdateOfficeSpace(c.Request.Context(), id, req.input())
	h.respond(c, http.StatusOK, officeSpace, err)
}

func (h *Handler) deleteOfficeSpace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	officeSpace, err := h.properties.DeleteOfficeSpace(c.Request.Context(), id)
	h.respond(c, http.StatusOK, officeSpace, err)
}
