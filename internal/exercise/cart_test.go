package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"practice/internal/model"
)

func TestCart(t *testing.T) {
	var c Cart

	line := c.Add(model.LineItem{Product: model.Product{Name: "apple", Price: 1500}, Quantity: 3})
	assert.Equal(t, 4500, line)
	c.Add(model.LineItem{Product: model.Product{Name: "pear", Price: 2000}, Quantity: 1})
	assert.Equal(t, 6500, c.Total())

	assert.Equal(t, 6500, c.Checkout())
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0, c.Checkout())
}
