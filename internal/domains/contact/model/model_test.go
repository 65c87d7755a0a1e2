package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sharmoria/internal/domains/contact/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{model.StatusNew, model.StatusRead, true},
		{model.StatusNew, model.StatusResponded, true},
		{model.StatusRead, model.StatusResponded, true},
		{model.StatusRead, model.StatusNew, false},
		{model.StatusResponded, model.StatusRead, false},
		{model.StatusResponded, model.StatusNew, false},
		{model.StatusNew, model.StatusNew, false},
		{"unknown", model.StatusRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, model.IsValidStatus(model.StatusNew))
	assert.True(t, model.IsValidStatus(model.StatusRead))
	assert.True(t, model.IsValidStatus(model.StatusResponded))
	assert.False(t, model.IsValidStatus("closed"))
}
