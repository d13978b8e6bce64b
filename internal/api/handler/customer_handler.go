package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/core/ports"
)

// CustomerHandler handles customer CRUD.
type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	Name   string `json:"name"   validate:"required,min=3,max=255"`
	Phone  string `json:"phone"  validate:"required,min=3,max=255"`
	IsGold bool   `json:"isGold"`
}

func (r customerRequest) input() ports.CustomerInput {
	return ports.CustomerInput{Name: r.Name, Phone: r.Phone, IsGold: r.IsGold}
}

// List returns all customers sorted by name.
//
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Success  200  {array}  domain.Customer
// @Router   /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns a single customer.
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.customers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Create stores a new customer.
//
// @Summary   Create a customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Security  TokenAuth
// @Param     body  body      customerRequest  true  "Customer"
// @Success   200   {object}  domain.Customer
// @Failure   400   {object}  map[string]string
// @Router    /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customers.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update replaces a customer's mutable fields.
func (h *CustomerHandler) Update(c echo.Context) error {
	var req customerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customers.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	customer, err := h.customers.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}
