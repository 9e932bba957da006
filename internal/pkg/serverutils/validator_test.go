package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email    string  `validate:"required,email"`
	FullName string  `validate:"required"`
	Score    float64 `validate:"gte=0"`
}

func TestValidateRequestPasses(t *testing.T) {
	req := sampleRequest{
		Email:    "teacher@example.com",
		FullName: "Ada Lovelace",
		Score:    87.5,
	}
	assert.NoError(t, ValidateRequest(req))
}

func TestValidateRequestReportsEveryFailure(t *testing.T) {
	req := sampleRequest{
		Email: "not-an-email",
		Score: -1,
	}

	err := ValidateRequest(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "field Email failed on email")
	assert.Contains(t, err.Error(), "field FullName failed on required")
	assert.Contains(t, err.Error(), "field Score failed on gte")
}
