package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Roller").
		InvalidField("Parallelism", "must be positive")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("INVALID_ARGUMENT: validation failed: Roller: is required; Parallelism: is invalid: must be positive", err.Error())
}

func (s *ValidationTestSuite) TestRepeatedFieldCollects() {
	vb := errors.NewValidationBuilder()
	vb.Fieldf("Filters", "filter %d is empty", 0).
		Fieldf("Filters", "filter %d is empty", 2)

	fields := errors.GetMeta(vb.Build())[errors.MetaFields].(map[string][]string)
	s.Equal([]string{"filter 0 is empty", "filter 2 is empty"}, fields["Filters"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidators() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("table", "   ", vb)
	errors.ValidateRange("item_limit", -1, 0, 100, vb)
	errors.ValidateRange("permission", 2, 0, 3, vb)
	errors.ValidateEnum("sheet_type", "merchant", []string{"loot", "npc"}, vb)

	err := vb.Build()
	s.Require().Error(err)

	fields := errors.GetMeta(err)[errors.MetaFields].(map[string][]string)
	s.Contains(fields, "table")
	s.Contains(fields["item_limit"][0], "must be between 0 and 100")
	s.NotContains(fields, "permission")
	s.Contains(fields["sheet_type"][0], "must be one of: loot, npc")
}
