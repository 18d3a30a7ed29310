package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/utils"
	"github.com/indiabills/console/internal/validate"
)

type CustomerHandler struct {
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create validates and creates a customer. Validation failures return
// every violated rule, not just the first.
func (h *CustomerHandler) Create(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	created, err := h.customers.Create(c.Request.Context(), customer)
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			utils.ErrorWithDetails(c, 422, "VALIDATION_FAILED", "Customer validation failed", verr.Violations)
			return
		}
		utils.Error(c, 502, "UPSTREAM_REJECTED", err.Error())
		return
	}

	utils.Success(c, 201, "Customer created", created)
}

// Get returns one customer.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid customer id")
		return
	}
	customer, ok := h.customers.Get(c.Request.Context(), id)
	if !ok {
		utils.Error(c, 404, "NOT_FOUND", "Customer not found")
		return
	}
	utils.Success(c, 200, "OK", customer)
}

// List returns all customers.
func (h *CustomerHandler) List(c *gin.Context) {
	utils.Success(c, 200, "OK", h.customers.List(c.Request.Context()))
}

// CreateAddress adds a validated address to a customer.
func (h *CustomerHandler) CreateAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid customer id")
		return
	}

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	created, err := h.customers.CreateAddress(c.Request.Context(), id, addr)
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			utils.ErrorWithDetails(c, 422, "VALIDATION_FAILED", "Address validation failed", verr.Violations)
			return
		}
		utils.Error(c, 502, "UPSTREAM_REJECTED", err.Error())
		return
	}
	utils.Success(c, 201, "Address created", created)
}

// Addresses lists a customer's addresses.
func (h *CustomerHandler) Addresses(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid customer id")
		return
	}
	utils.Success(c, 200, "OK", h.customers.Addresses(c.Request.Context(), id))
}

// Subscriptions lists a customer's recurring plans.
func (h *CustomerHandler) Subscriptions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid customer id")
		return
	}
	utils.Success(c, 200, "OK", h.customers.Subscriptions(c.Request.Context(), id))
}
