package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 45, CalculateOffset(4, 15))
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 10, ClampPageSize(0, 50))
	assert.Equal(t, 10, ClampPageSize(-3, 50))
	assert.Equal(t, 25, ClampPageSize(25, 50))
	assert.Equal(t, 50, ClampPageSize(500, 50))
	assert.Equal(t, 500, ClampPageSize(500, 0))
}

func TestGenerateOTP(t *testing.T) {
	code := GenerateOTP(6)

	assert.Len(t, code, 6)
	for _, c := range code {
		assert.GreaterOrEqual(t, c, '0')
		assert.LessOrEqual(t, c, '9')
	}

	// Zero length falls back to the default size.
	assert.Len(t, GenerateOTP(0), 6)
	assert.Len(t, GenerateOTP(4), 4)
}
