package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRegion(t *testing.T) {
	for _, region := range Regions {
		assert.True(t, IsValidRegion(region), region)
	}

	assert.False(t, IsValidRegion(""))
	assert.False(t, IsValidRegion("Seoul"))
	assert.False(t, IsValidRegion("강원도"))
}
