package testhelpers

import (
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/recipefy/backend/internal/types"
)

// MockTokenValidator implements middleware.TokenValidator for handler tests.
type MockTokenValidator struct {
	mock.Mock
}

func (v *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := v.Called(strings.TrimPrefix(token, "Bearer "))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
