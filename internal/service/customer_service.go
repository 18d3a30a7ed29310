package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/store"
	"github.com/indiabills/console/internal/validate"
	"github.com/indiabills/console/pkg/indiabills"
)

// CustomerService creates and reads customer records. Creation
// validates every field locally first and reports all violations at
// once; only a clean payload reaches the upstream.
type CustomerService struct {
	api       *indiabills.Client
	state     *store.Store
	validator *validate.Validator
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(api *indiabills.Client, state *store.Store, validator *validate.Validator) *CustomerService {
	return &CustomerService{api: api, state: state, validator: validator}
}

// Create validates and creates a customer. Validation errors are
// returned before any network call is made.
func (s *CustomerService) Create(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	if err := s.validator.Customer(customer); err != nil {
		return nil, err
	}

	res := s.api.CreateCustomer(ctx, customer)
	if !res.IsOk() {
		log.Error().Int("status", res.Status()).Str("error", res.Message()).Msg("Customer creation failed")
		return nil, errUpstream(res.Status(), res.Message())
	}

	created := res.Data()
	s.state.PutCustomer(created)
	log.Info().Int("customer_id", created.ID).Msg("Customer created")
	return &created, nil
}

// Get returns a customer, preferring the in-memory cache.
func (s *CustomerService) Get(ctx context.Context, id int) (*models.Customer, bool) {
	if c, ok := s.state.CustomerByID(id); ok {
		return &c, true
	}

	res := s.api.Customer(ctx, id)
	if !res.IsOk() {
		return nil, false
	}
	c := res.Data()
	s.state.PutCustomer(c)
	return &c, true
}

// List returns all customers for the organization.
func (s *CustomerService) List(ctx context.Context) []models.Customer {
	res := s.api.Customers(ctx)
	if !res.IsOk() {
		return []models.Customer{}
	}
	return res.Data()
}

// CreateAddress validates and adds an address to a customer.
func (s *CustomerService) CreateAddress(ctx context.Context, customerID int, addr models.Address) (*models.Address, error) {
	if err := s.validator.Address(addr); err != nil {
		return nil, err
	}

	res := s.api.CreateAddress(ctx, customerID, addr)
	if !res.IsOk() {
		return nil, errUpstream(res.Status(), res.Message())
	}
	created := res.Data()
	return &created, nil
}

// Addresses lists a customer's addresses.
func (s *CustomerService) Addresses(ctx context.Context, customerID int) []models.Address {
	res := s.api.Addresses(ctx, customerID)
	if !res.IsOk() {
		return []models.Address{}
	}
	return res.Data()
}

// Subscriptions lists a customer's recurring plans.
func (s *CustomerService) Subscriptions(ctx context.Context, customerID int) []models.Subscription {
	res := s.api.Subscriptions(ctx, customerID)
	if !res.IsOk() {
		return []models.Subscription{}
	}
	return res.Data()
}
