package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		Customer: CustomerInfo{
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Phone:     "9876543210",
		},
		Delivery: DeliveryAddress{
			Address:  "12 Craft Lane",
			City:     "Jaipur",
			District: "Amer",
			Zone:     "North",
		},
		PaymentMethod: "cod",
	}
}

func TestCheckoutRequest_Valid(t *testing.T) {
	req := validCheckoutRequest()

	err := req.Validate()

	assert.NoError(t, err)
	assert.Empty(t, Fields(err))
}

func TestCheckoutRequest_EmptyEmail_FlattensToLeafKey(t *testing.T) {
	req := validCheckoutRequest()
	req.Customer.Email = ""

	fields := Fields(req.Validate())

	// nested customer errors surface under the leaf key
	require.Contains(t, fields, "email")
	assert.Equal(t, "email is required", fields["email"])
	assert.NotContains(t, fields, "customer")
}

func TestCheckoutRequest_InvalidEmailFormat(t *testing.T) {
	req := validCheckoutRequest()
	req.Customer.Email = "not-an-email"

	fields := Fields(req.Validate())

	assert.Equal(t, "invalid email format", fields["email"])
}

func TestCustomerInfo_PhoneValidation(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"ten digits", "9876543210", false},
		{"internal whitespace stripped", "98765 43210", false},
		{"leading and trailing spaces", "  9876543210  ", false},
		{"nine digits", "987654321", true},
		{"eleven digits", "98765432100", true},
		{"letters", "98765abcde", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := CustomerInfo{
				FirstName: "Asha",
				LastName:  "Verma",
				Email:     "asha@example.com",
				Phone:     tt.phone,
			}

			fields := Fields(info.Validate())

			if tt.wantErr {
				assert.Contains(t, fields, "phone")
			} else {
				assert.NotContains(t, fields, "phone")
			}
		})
	}
}

func TestCheckoutRequest_PaymentMethod(t *testing.T) {
	req := validCheckoutRequest()
	req.PaymentMethod = "card"

	fields := Fields(req.Validate())

	assert.Equal(t, "only cash on delivery is supported", fields["payment_method"])

	req.PaymentMethod = ""
	fields = Fields(req.Validate())
	assert.Equal(t, "payment method is required", fields["payment_method"])
}

func TestDeliveryAddress_LandmarkOptional(t *testing.T) {
	addr := DeliveryAddress{
		Address:  "12 Craft Lane",
		City:     "Jaipur",
		District: "Amer",
		Zone:     "North",
	}

	assert.NoError(t, addr.Validate())

	addr.Landmark = "Opposite the clock tower"
	assert.NoError(t, addr.Validate())
}

func TestDeliveryAddress_MissingRequiredFields(t *testing.T) {
	fields := Fields(DeliveryAddress{}.Validate())

	assert.Contains(t, fields, "address")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "district")
	assert.Contains(t, fields, "zone")
	assert.NotContains(t, fields, "landmark")
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Empty(t, Fields(nil))
	assert.Empty(t, Fields(assert.AnError))
}
