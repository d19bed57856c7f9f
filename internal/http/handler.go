package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/service"
)

// Services groups the business services the handlers call into.
type Services struct {
	Owners     *service.OwnerService
	Customers  *service.CustomerService
	Properties *service.PropertyService
	Leases     *service.LeaseService
	Rents      *service.RentService
	Utilities  *service.UtilityService
}

type RollExporter interface {
	Generate(roll []model.RentStatement) ([]byte, error)
}

type InvoiceRenderer interface {
	Generate(statement model.RentStatement) ([]byte, error)
}

type Handler struct {
	owners     *service.OwnerService
	customers  *service.CustomerService
	properties *service.PropertyService
	leases     *service.LeaseService
	rents      *service.RentService
	utilities  *service.UtilityService
	roll       RollExporter
	invoices   InvoiceRenderer
	log        zerolog.Logger
}

func NewHandler(services Services, roll RollExporter, invoices InvoiceRenderer, log zerolog.Logger) *Handler {
	return &Handler{
		owners:     services.Owners,
		customers:  services.Customers,
		properties: services.Properties,
		leases:     services.Leases,
		rents:      services.Rents,
		utilities:  services.Utilities,
		roll:       roll,
		invoices:   invoices,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.health)

	owners := router.Group("/owners")
	owners.POST("", h.createOwner)
	owners.GET("", h.listOwners)
	owners.GET("/:id", h.getOwner)
	owners.PUT("/:id", h.updateOwner)
	owners.DELETE("/:id", h.deleteOwner)
	owners.GET("/:id/properties", h.listOwnerProperties)

	customers := router.Group("/customers")
	customers.POST("", h.createCustomer)
	customers.GET("", h.listCustomers)
	customers.GET("/:id", h.getCustomer)
	customers.PUT("/:id", h.updateCustomer)
	customers.DELETE("/:id", h.deleteCustomer)
	customers.GET("/:id/leases", h.listCustomerLeases)

	residences := router.Group("/residences")
	residences.POST("", h.createResidence)
	residences.GET("", h.listResidences)
	residences.GET("/:id", h.getResidence)
	residences.PUT("/:id", h.updateResidence)
	residences.DELETE("/:id", h.deleteResidence)

	eventSpaces := router.Group("/event-spaces")
	eventSpaces.POST("", h.createEventSpace)
	eventSpaces.GET("", h.listEventSpaces)
	eventSpaces.GET("/:id", h.getEventSpace)
	eventSpaces.PUT("/:id", h.updateEventSpace)
	eventSpaces.DELETE("/:id", h.deleteEventSpace)

	officeSpaces := router.Group("/office-spaces")
	officeSpaces.POST("", h.createOfficeSpace)
	officeSpaces.GET("", h.listOfficeSpaces)
	officeSpaces.GET("/:id", h.getOfficeSpace)
	officeSpaces.PUT("/:id", h.updateOfficeSpace)
	officeSpaces.DELETE("/:id", h.deleteOfficeSpace)

	properties := router.Group("/properties")
	properties.GET("/:id", h.getProperty)
	properties.GET("/:id/leases", h.listPropertyLeases)
	properties.GET("/:id/utility-leases", h.listPropertyUtilityLeases)

	utilities := router.Group("/utilities")
	utilities.POST("", h.createUtility)
	utilities.GET("", h.listUtilities)
	utilities.GET("/:id", h.getUtility)
	utilities.PUT("/:id", h.updateUtility)
	utilities.DELETE("/:id", h.deleteUtility)
	utilities.GET("/:id/utility-leases", h.listUtilityUtilityLeases)

	utilityLeases := router.Group("/utility-leases")
	utilityLeases.POST("", h.createUtilityLease)
	utilityLeases.GET("", h.listUtilityLeases)
	utilityLeases.GET("/:id", h.getUtilityLease)
	utilityLeases.PUT("/:id", h.updateUtilityLease)
	utilityLeases.DELETE("/:id", h.deleteUtilityLease)

	leases := router.Group("/leases")
	leases.POST("", h.createLease)
	leases.GET("", h.listLeases)
	leases.GET("/:id", h.getLease)
	leases.PUT("/:id", h.updateLease)
	leases.DELETE("/:id", h.deleteLease)
	leases.GET("/:id/rents", h.listLeaseRents)

	rents := router.Group("/rents")
	rents.POST("", h.createRent)
	rents.GET("", h.listRents)
	rents.GET("/export", h.exportRentRoll)
	rents.GET("/:id", h.getRent)
	rents.PUT("/:id", h.updateRent)
	rents.DELETE("/:id", h.deleteRent)
	rents.GET("/:id/invoice", h.rentInvoice)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respond writes either the service error or the result with status.
func (h *Handler) respond(c *gin.Context, status int, result interface{}, err error) {
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(status, result)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrHasDependents):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bind decodes and validates the JSON body, answering 400 on failure.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// pathID parses the :id route parameter, answering 400 on failure.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
