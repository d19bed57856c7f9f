package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/leasing-service/internal/service"
)

// Password is optional on update, where an empty value keeps the stored hash.
type ownerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
}

func (r ownerRequest) input() service.OwnerInput {
	return service.OwnerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
	}
}

type customerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
}

func (r customerRequest) input() service.CustomerInput {
	return service.CustomerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

func requirePassword(c *gin.Context, password string) bool {
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return false
	}
	return true
}

func (h *Handler) createOwner(c *gin.Context) {
	var req ownerRequest
	if !bind(c, &req) || !requirePassword(c, req.Password) {
		return
	}
	owner, err := h.owners.Create(c.Request.Context(), req.input())
	h.respond(c, http.StatusCreated, owner, err)
}

func (h *Handler) listOwners(c *gin.Context) {
	owners, err := h.owners.List(c.Request.Context())
	h.respond(c, http.StatusOK, owners, err)
}

func (h *Handler) getOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	owner, err := h.owners.Get(c.Request.Context(), id)
	h.respond(c, http.StatusOK, owner, err)
}

func (h *Handler) updateOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ownerRequest
	if !bind(c, &req) {
		return
	}
	owner, err := h.owners.Update(c.Request.Context(), id, req.input())
	h.respond(c, http.StatusOK, owner, err)
}

func (h *Handler) deleteOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	owner, err := h.owners.Delete(c.Request.Context(), id)
	h.respond(c, http.StatusOK, owner, err)
}

func (h *Handler) listOwnerProperties(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	properties, err := h.properties.ListByOwner(c.Request.Context(), id)
	h.respond(c, http.StatusOK, properties, err)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req customerRequest
	if !bind(c, &req) || !requirePassword(c, req.Password) {
		return
	}
	customer, err := h.customers.Create(c.Request.Context(), req.input())
	h.respond(c, http.StatusCreated, customer, err)
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	h.respond(c, http.StatusOK, customers, err)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.customers.Get(c.Request.Context(), id)
	h.respond(c, http.StatusOK, customer, err)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req customerRequest
	if !bind(c, &req) {
		return
	}
	customer, err := h.customers.Update(c.Request.Context(), id, req.input())
	h.respond(c, http.StatusOK, customer, err)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.customers.Delete(c.Request.Context(), id)
	h.respond(c, http.StatusOK, customer, err)
}

func (h *Handler) listCustomerLeases(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	leases, err := h.leases.ListByCustomer(c.Request.Context(), id)
	h.respond(c, http.StatusOK, leases, err)
}
