package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// ROLE-KEYED REGISTRATION
// =====================================================
// Customer, seller, and admin registration share one form shell. The
// Role selects an ADDITIVE rule-set and field-set: one code path, with
// the extra rules stacked on top of the base ones.

// Role tags a registration variant
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// RegistrationRequest is the shared registration form. Business fields
// are only required for the seller role.
type RegistrationRequest struct {
	Role            Role   `json:"role"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`

	// Seller business fields
	StoreName      string `json:"store_name,omitempty"`
	RegistrationNo string `json:"registration_no,omitempty"`
}

func (r RegistrationRequest) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.By(func(interface{}) error {
				if !r.Role.IsValid() {
					return validation.NewError("validation_invalid_role", "role must be customer, seller, or admin")
				}
				return nil
			}),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("phone is required"),
			validation.By(validTenDigitPhone),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be at least 8 characters"),
		),
		validation.Field(&r.ConfirmPassword,
			validation.Required.Error("confirmation password is required"),
			validation.In(r.Password).Error("passwords do not match"),
		),
	}

	// Seller registration stacks the business rule-set on top
	if r.Role == RoleSeller {
		rules = append(rules,
			validation.Field(&r.StoreName,
				validation.Required.Error("store name is required"),
				validation.Length(2, 150),
			),
			validation.Field(&r.RegistrationNo,
				validation.Required.Error("business registration number is required"),
				validation.Match(regexp.MustCompile(`^[A-Za-z0-9-]{5,30}$`)).Error("invalid registration number"),
			),
		)
	}

	return validation.ValidateStruct(&r, rules...)
}
