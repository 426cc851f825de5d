package model

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// CHECKOUT FORM TYPES
// =====================================================
// Validation errors are never thrown: every Validate returns
// field→message data via Fields() so the form can render them inline.

var tenDigitPhone = regexp.MustCompile(`^[0-9]{10}$`)

// CustomerInfo is the buyer identity attached to an order.
// Supplied by the form (possibly prefilled from the auth provider's
// identity context); the core trusts it as-is.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c CustomerInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&c.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&c.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&c.Phone,
			validation.Required.Error("phone is required"),
			validation.By(validTenDigitPhone),
		),
	)
}

// validTenDigitPhone accepts exactly 10 digits after whitespace stripping
func validTenDigitPhone(value interface{}) error {
	phone, _ := value.(string)
	stripped := strings.Join(strings.Fields(phone), "")
	if !tenDigitPhone.MatchString(stripped) {
		return errors.New("phone must be exactly 10 digits")
	}
	return nil
}

// DeliveryAddress is where the order ships. Landmark is optional.
type DeliveryAddress struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Zone     string `json:"zone"`
	Landmark string `json:"landmark,omitempty"`
}

func (a DeliveryAddress) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address,
			validation.Required.Error("address is required"),
			validation.Length(1, 255),
		),
		validation.Field(&a.City,
			validation.Required.Error("city is required"),
			validation.Length(1, 100),
		),
		validation.Field(&a.District,
			validation.Required.Error("district is required"),
			validation.Length(1, 100),
		),
		validation.Field(&a.Zone,
			validation.Required.Error("zone is required"),
			validation.Length(1, 100),
		),
		validation.Field(&a.Landmark,
			validation.Length(0, 255),
		),
	)
}

// CheckoutRequest is the full checkout form submission
type CheckoutRequest struct {
	Customer      CustomerInfo    `json:"customer"`
	Delivery      DeliveryAddress `json:"delivery"`
	PaymentMethod string          `json:"payment_method"`
}

func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Customer),
		validation.Field(&r.Delivery),
		validation.Field(&r.PaymentMethod,
			validation.Required.Error("payment method is required"),
			validation.In("cod").Error("only cash on delivery is supported"),
		),
	)
}

// =====================================================
// FIELD ERROR MAPPING
// =====================================================

// Fields flattens an ozzo validation error into a field→message map.
// Nested struct errors (customer, delivery) flatten to their leaf keys
// so "email" maps directly, the way the form renders inline errors.
// A nil error or a non-validation error yields an empty map.
func Fields(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return out
	}

	flatten(out, errs)
	return out
}

func flatten(out map[string]string, errs validation.Errors) {
	for field, ferr := range errs {
		var nested validation.Errors
		if errors.As(ferr, &nested) {
			flatten(out, nested)
			continue
		}
		out[field] = ferr.Error()
	}
}
