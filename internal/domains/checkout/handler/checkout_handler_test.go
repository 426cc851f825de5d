package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-backend/internal/domains/checkout/model"
	orderModel "heritage-backend/internal/domains/order/model"
	"heritage-backend/internal/shared/middleware"
)

// stubService scripts Submit outcomes for handler-level tests
type stubService struct {
	order  *orderModel.Order
	fields map[string]string
	err    error
}

func (s *stubService) Validate(req model.CheckoutRequest) map[string]string {
	return model.Fields(req.Validate())
}

func (s *stubService) Submit(context.Context, string, model.CheckoutRequest) (*orderModel.Order, map[string]string, error) {
	return s.order, s.fields, s.err
}

func submitRequest(t *testing.T, svc *stubService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(model.CheckoutRequest{
		Customer: model.CustomerInfo{
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Phone:     "9876543210",
		},
		Delivery: model.DeliveryAddress{
			Address:  "12 Craft Lane",
			City:     "Jaipur",
			District: "Amer",
			Zone:     "North",
		},
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body))
	c.Set(middleware.ContextKeySessionID, "session-1")

	NewHandler(svc).Submit(c)
	return w
}

func TestSubmit_CancelledWritesExplicitStatus(t *testing.T) {
	w := submitRequest(t, &stubService{err: model.ErrSubmitCancelled})

	// A discarded submission must never read as 200
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}

func TestSubmit_ValidationErrorsMapTo422(t *testing.T) {
	w := submitRequest(t, &stubService{
		fields: map[string]string{"email": "email is required"},
		err:    model.ErrValidationFailed,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}

func TestSubmit_EmptyCartMapsTo409(t *testing.T) {
	w := submitRequest(t, &stubService{err: orderModel.ErrEmptyCart})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmit_SuccessReturns201(t *testing.T) {
	w := submitRequest(t, &stubService{
		order: &orderModel.Order{OrderID: "HH-20260115083000-A1B2C3"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "HH-20260115083000-A1B2C3")
}
