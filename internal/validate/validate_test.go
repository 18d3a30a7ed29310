package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiabills/console/internal/models"
)

func validRetailCustomer() models.Customer {
	return models.Customer{
		Kind:  models.CustomerRetail,
		Name:  "Asha Traders",
		Email: "asha@example.com",
		Phone: "9876543210",
	}
}

func TestPinCodeRule(t *testing.T) {
	v := New()

	addr := models.Address{Line1: "12 MG Road", City: "Pune", State: "MH", PinCode: "411001"}
	assert.NoError(t, v.Address(addr))

	tests := []string{"12345", "1234567", "41100a", ""}
	for _, pin := range tests {
		addr.PinCode = pin
		err := v.Address(addr)
		assert.Error(t, err, "pin %q should be rejected", pin)
	}
}

func TestValidBusinessCustomer(t *testing.T) {
	v := New()

	c := validRetailCustomer()
	c.Kind = models.CustomerBusiness
	c.GSTIN = "27AAPFU0939F1ZV"
	c.PAN = "AAPFU0939F"
	assert.NoError(t, v.Customer(c))
}

func TestBusinessCustomerRequiresGSTIN(t *testing.T) {
	v := New()

	c := validRetailCustomer()
	c.Kind = models.CustomerBusiness
	c.GSTIN = ""

	err := v.Customer(c)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "gstin")
}

func TestValidationAggregatesAllViolations(t *testing.T) {
	v := New()

	c := models.Customer{
		Kind:  models.CustomerBusiness,
		Name:  "",
		Email: "not-an-email",
		Phone: "12345",
		GSTIN: "BADGSTIN",
	}

	err := v.Customer(c)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	// Every violated rule is reported, not just the first.
	assert.GreaterOrEqual(t, len(verr.Violations), 4)
	joined := verr.Error()
	assert.Contains(t, joined, "name")
	assert.Contains(t, joined, "email")
	assert.Contains(t, joined, "phone")
	assert.Contains(t, joined, "gstin")
}

func TestGSTINPattern(t *testing.T) {
	v := New()

	base := validRetailCustomer()

	valid := []string{"27AAPFU0939F1ZV", "09AABCU9603R1ZM"}
	for _, g := range valid {
		c := base
		c.GSTIN = g
		assert.NoError(t, v.Customer(c), "GSTIN %q should pass", g)
	}

	invalid := []string{
		"27AAPFU0939F1XV", // 13th char must be Z
		"27aapfu0939f1zv", // lowercase
		"27AAPFU0939F0ZV", // entity digit cannot be 0
		"27AAPFU0939F1Z",  // too short
	}
	for _, g := range invalid {
		c := base
		c.GSTIN = g
		assert.Error(t, v.Customer(c), "GSTIN %q should fail", g)
	}
}

func TestAadhaarAndPhoneRules(t *testing.T) {
	v := New()

	c := validRetailCustomer()
	c.Aadhaar = "234567890123"
	assert.NoError(t, v.Customer(c))

	c.Aadhaar = "123456789012" // cannot start with 0/1
	assert.Error(t, v.Customer(c))

	c = validRetailCustomer()
	c.Phone = "98765432100" // 11 digits
	assert.Error(t, v.Customer(c))
}
