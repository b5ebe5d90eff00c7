package validator_test

import (
	"testing"

	"github.com/goto/backoffice/core/validator"
	"github.com/goto/backoffice/pkg/apierror"
	"gotest.tools/assert"
)

func TestValidateStruct(t *testing.T) {
	type DummyStruct struct {
		Grade string `json:"grade" validate:"omitempty,oneof=VIP GOLD"`
		Page  int    `json:"page" validate:"omitempty,gte=0"`
		Limit int    `json:"limit" validate:"omitempty,lte=100"`
		Name  string `json:"name" validate:"required"`
	}

	type TestCase struct {
		Description string
		Struct      interface{}
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values in oneof validation",
			Struct:      DummyStruct{Grade: "random", Name: "x"},
			ErrString:   "error value \"random\" for key \"grade\" not recognized, only support \"VIP GOLD\"",
		},
		{
			Description: "return error when integer is below the lower bound",
			Struct:      DummyStruct{Page: -1, Name: "x"},
			ErrString:   "page cannot be less than 0",
		},
		{
			Description: "return error when integer is above the upper bound",
			Struct:      DummyStruct{Limit: 101, Name: "x"},
			ErrString:   "limit cannot be greater than 100",
		},
		{
			Description: "join every violation",
			Struct:      DummyStruct{Page: -1},
			ErrString:   "page cannot be less than 0 and name is required",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateStruct(tc.Struct)
			assert.Equal(t, tc.ErrString, err.(*apierror.Error).Message)
			assert.Equal(t, apierror.KindInvalid, err.(*apierror.Error).Kind)
		})
	}

	t.Run("return nil for a valid struct", func(t *testing.T) {
		assert.NilError(t, validator.ValidateStruct(DummyStruct{Grade: "VIP", Name: "x"}))
	})
}

func TestValidateOneOf(t *testing.T) {
	err := validator.ValidateOneOf("random", "asc", "desc")
	assert.Equal(t, "error value \"random\" not recognized, only support \"asc desc\"", err.(*apierror.Error).Message)

	assert.NilError(t, validator.ValidateOneOf("", "asc", "desc"))
	assert.NilError(t, validator.ValidateOneOf("asc", "asc", "desc"))
}
