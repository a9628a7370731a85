package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dexseed/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("output", "is required")
	ve.AddFieldError("end_id", "must be greater than start_id")

	s.True(ve.HasErrors())
	s.Equal("validation failed: end_id: must be greater than start_id; output: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Client").
		Fieldf("StartID", "must be at least %d", 1)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Client: is required")
	s.Contains(err.Error(), "StartID: must be at least 1")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "pokemon.yaml", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("output", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", "yaml", []string{"yaml", "json"}, vb)
	s.NoError(vb.Build())

	errors.ValidateEnum("format", "toml", []string{"yaml", "json"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: yaml, json")
}
