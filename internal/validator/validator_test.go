package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New()
	require.NotNil(t, v)
	require.NotNil(t, v.Errors)
	assert.True(t, v.Valid())
}

func TestValidator_AddErrorKeepsFirst(t *testing.T) {
	v := New()
	v.AddError("rating", "is required")
	v.AddError("rating", "must be at most 5")

	assert.False(t, v.Valid())
	assert.Equal(t, "is required", v.Errors["rating"])
}

func TestValidator_Check(t *testing.T) {
	v := New()
	v.Check(true, "comment", "too long")
	assert.True(t, v.Valid())

	v.Check(false, "comment", "too long")
	assert.Equal(t, "too long", v.Errors["comment"])
}

type reviewLike struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment" validate:"max=10"`
}

func TestValidator_Struct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		v := New()
		require.NoError(t, v.Struct(reviewLike{ServiceID: "service-1", Rating: 4}))
		assert.True(t, v.Valid())
	})

	t.Run("Field errors use json names", func(t *testing.T) {
		v := New()
		require.NoError(t, v.Struct(reviewLike{Rating: 6, Comment: "demasiado largo"}))
		assert.False(t, v.Valid())
		assert.Equal(t, "is required", v.Errors["serviceId"])
		assert.Equal(t, "must be at most 5", v.Errors["rating"])
		assert.Equal(t, "must be at most 10 characters", v.Errors["comment"])
	})

	t.Run("Non struct", func(t *testing.T) {
		v := New()
		assert.Error(t, v.Struct("nope"))
	})
}
