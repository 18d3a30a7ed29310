// Package validate performs local field validation before any network
// call, aggregating every violated rule into one error so callers can
// display the full list rather than just the first failure.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/indiabills/console/internal/models"
)

var (
	pinCodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	gstinRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	aadhaarRe = regexp.MustCompile(`^[2-9][0-9]{11}$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validator wraps a configured validator instance with the custom
// Indian tax/identity rules registered.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with pincode, gstin, pan, aadhaar and inphone
// rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("pincode", matchRule(pinCodeRe))
	_ = v.RegisterValidation("gstin", matchRule(gstinRe))
	_ = v.RegisterValidation("pan", matchRule(panRe))
	_ = v.RegisterValidation("aadhaar", matchRule(aadhaarRe))
	_ = v.RegisterValidation("inphone", matchRule(phoneRe))

	return &Validator{v: v}
}

func matchRule(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// ValidationError aggregates every violated rule for one payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Struct validates any tagged struct and returns a *ValidationError
// listing all violations, or nil.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, describe(fe))
	}
	return out
}

// Customer validates a customer-creation payload, adding the
// kind-dependent rule that business customers must carry a GSTIN.
func (va *Validator) Customer(c models.Customer) error {
	err := va.Struct(c)

	var verr *ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	if verr == nil {
		verr = &ValidationError{}
	}

	if c.Kind == models.CustomerBusiness && c.GSTIN == "" {
		verr.Violations = append(verr.Violations, "gstin: required for business customers")
	}

	if len(verr.Violations) == 0 {
		return nil
	}
	return verr
}

// Address validates an address payload.
func (va *Validator) Address(a models.Address) error {
	return va.Struct(a)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", field)
	case "email":
		return fmt.Sprintf("%s: not a valid email address", field)
	case "pincode":
		return fmt.Sprintf("%s: must be exactly 6 digits", field)
	case "gstin":
		return fmt.Sprintf("%s: not a valid GSTIN", field)
	case "pan":
		return fmt.Sprintf("%s: not a valid PAN", field)
	case "aadhaar":
		return fmt.Sprintf("%s: not a valid Aadhaar number", field)
	case "inphone":
		return fmt.Sprintf("%s: must be exactly 10 digits", field)
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}
