package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0))
	assert.Equal(t, 1, totalPages(1))
	assert.Equal(t, 1, totalPages(10))
	assert.Equal(t, 2, totalPages(11))
	assert.Equal(t, 3, totalPages(25))
	assert.Equal(t, 3, totalPages(30))
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, pageOffset(1))
	assert.Equal(t, 10, pageOffset(2))
	assert.Equal(t, 40, pageOffset(5))
}

func TestParsePage(t *testing.T) {
	app := fiber.New()
	var got int
	app.Get("/items", func(c *fiber.Ctx) error {
		got = parsePage(c)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		url  string
		want int
	}{
		{"/items", 1},
		{"/items?page=3", 3},
		{"/items?page=0", 1},
		{"/items?page=-2", 1},
		{"/items?page=abc", 1},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, tt.want, got, tt.url)
	}
}

func TestParseIDParam(t *testing.T) {
	app := fiber.New()
	var id uint
	var parseErr error
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, parseErr = parseIDParam(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/items/17", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, parseErr)
	assert.Equal(t, uint(17), id)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/banana", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Error(t, parseErr)
}
