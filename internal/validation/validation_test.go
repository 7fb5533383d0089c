package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLatLon(t *testing.T) {
	for s, want := range map[string]bool{
		"51.5,-0.12":   true,
		" 1 , 2 ":      true,
		"0,0":          true,
		"51.5":         false,
		"a,b":          false,
		"1,NaN":        false,
		"1,2,3":        false,
		"":             false,
		"12.0,Inf":     false,
		"-33.86,151.2": true,
	} {
		assert.Equal(t, want, IsLatLon(s), s)
	}
}

func TestSplitLatLon(t *testing.T) {
	lat, lon := SplitLatLon("1.5,2.5")
	assert.Equal(t, "1.5", lat)
	assert.Equal(t, "2.5", lon)

	lat, lon = SplitLatLon("")
	assert.Equal(t, "0.0", lat)
	assert.Equal(t, "0.0", lon)
}

func TestFromBinding(t *testing.T) {
	Register()

	type input struct {
		UserName string `binding:"required"`
		Location string `binding:"required,latlon"`
	}

	err := binding.Validator.ValidateStruct(&input{Location: "1,2"})
	ve := FromBinding(err)
	require.NotNil(t, ve)
	assert.Equal(t, "UserName", ve.Field)
	assert.True(t, ve.Missing())

	err = binding.Validator.ValidateStruct(&input{UserName: "alice", Location: "north"})
	ve = FromBinding(err)
	require.NotNil(t, ve)
	assert.Equal(t, RuleLatLon, ve.Rule)
	assert.False(t, ve.Missing())

	assert.Nil(t, binding.Validator.ValidateStruct(&input{UserName: "alice", Location: "1,2"}))

	ve = FromBinding(errors.New("unexpected EOF"))
	assert.Equal(t, RuleMalformed, ve.Rule)
	assert.Nil(t, FromBinding(nil))
}

func TestRegisterRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerRules(v, rules))

	assert.NoError(t, v.Var("51.50,-0.12", RuleLatLon))
	assert.Error(t, v.Var("north", RuleLatLon))

	// A rule that cannot be installed is reported, not dropped.
	err := registerRules(validator.New(), map[string]validator.Func{"": rules[RuleLatLon]})
	assert.Error(t, err)
}

func TestRegisterInstallsOnGinValidator(t *testing.T) {
	require.NotPanics(t, Register)

	type input struct {
		Location string `binding:"required,latlon"`
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&input{Location: "1,2"}))
	assert.Error(t, binding.Validator.ValidateStruct(&input{Location: "1"}))
}
