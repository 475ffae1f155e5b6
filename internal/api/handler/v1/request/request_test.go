package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "sam@example.com",
		Password:        "passw0rd1",
		ConfirmPassword: "passw0rd1",
		Name:            "Sam",
		Role:            "staff",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "pass1"
		req.ConfirmPassword = "pass1"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password without digits", func(t *testing.T) {
		req := valid
		req.Password = "passwordonly"
		req.ConfirmPassword = "passwordonly"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password without letters", func(t *testing.T) {
		req := valid
		req.Password = "1234567890"
		req.ConfirmPassword = "1234567890"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("confirm password mismatch", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "passw0rd2"
		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := valid
		req.Role = "owner"
		assert.Error(t, req.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func TestStockAdjustmentRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := StockAdjustmentRequest{ProductID: 3, Quantity: 5}
		assert.NoError(t, req.Validate())
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := StockAdjustmentRequest{ProductID: 3, Quantity: 0}
		assert.Error(t, req.Validate())
	})

	t.Run("negative quantity", func(t *testing.T) {
		req := StockAdjustmentRequest{ProductID: 3, Quantity: -1}
		assert.Error(t, req.Validate())
	})

	t.Run("missing product", func(t *testing.T) {
		req := StockAdjustmentRequest{Quantity: 5}
		assert.Error(t, req.Validate())
	})
}

func TestCreateProductRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateProductRequest{Name: "Hammer", CategoryID: 1, Price: "19.99", Quantity: 10}
		assert.NoError(t, req.Validate())
	})

	t.Run("zero opening quantity is allowed", func(t *testing.T) {
		req := CreateProductRequest{Name: "Hammer", CategoryID: 1, Price: "19.99"}
		assert.NoError(t, req.Validate())
	})

	t.Run("negative quantity", func(t *testing.T) {
		req := CreateProductRequest{Name: "Hammer", CategoryID: 1, Price: "19.99", Quantity: -1}
		assert.Error(t, req.Validate())
	})

	t.Run("price not numeric", func(t *testing.T) {
		req := CreateProductRequest{Name: "Hammer", CategoryID: 1, Price: "cheap", Quantity: 1}
		assert.Error(t, req.Validate())
	})

	t.Run("missing category", func(t *testing.T) {
		req := CreateProductRequest{Name: "Hammer", Price: "19.99"}
		assert.Error(t, req.Validate())
	})
}
