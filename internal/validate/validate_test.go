package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string    `yaml:"name" validate:"required"`
	Kind   string    `yaml:"kind" validate:"required,oneof=a b"`
	When   time.Time `yaml:"when" validate:"required"`
	Ignore string
}

func TestStructSuccess(t *testing.T) {
	err := Struct(payload{Name: "x", Kind: "a", When: time.Now()})
	require.NoError(t, err)
}

func TestStructCollectsFailures(t *testing.T) {
	err := Struct(payload{Kind: "z"})
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok, "expected Errors, got %T", err)
	require.Len(t, errs, 3)

	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field] = fe.Tag
	}
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "oneof", fields["kind"])
	assert.Equal(t, "required", fields["when"])
	assert.Contains(t, err.Error(), "kind failed on oneof=a b")
}
