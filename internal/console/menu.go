package console

import (
	"context"
	"errors"
	"fmt"

	"practice/internal/exercise"
	"practice/internal/model"
)

const (
	catalogMenu = "1. Register product | 2. List products | 3. Quit\n"
	cartMenu    = "1: Add product, 2: Checkout, 3: Quit\n"
)

// RunCatalog runs the product registry menu until the user quits or input
// ends.
func (c *Console) RunCatalog(ctx context.Context) error {
	catalog := exercise.NewCatalog(c.cfg.CatalogCapacity)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf(catalogMenu)
		choice, err := c.askInt("Choose a menu option: ")
		if isEOF(err) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if catalog.Full() {
				c.warn("No more products can be registered.\n")
				continue
			}
			p, err := c.readProduct()
			if err != nil {
				return err
			}
			if err := catalog.Register(p); errors.Is(err, exercise.ErrCatalogFull) {
				c.warn("No more products can be registered.\n")
			}
		case 2:
			if catalog.Len() == 0 {
				c.printf("No products registered.\n")
				continue
			}
			for _, p := range catalog.List() {
				c.printf("%s: %d\n", p.Name, p.Price)
			}
		case 3:
			c.printf("Exiting.\n")
			return nil
		default:
			c.warn("Invalid menu choice.\n")
		}
	}
}

// RunCart runs the purchase/checkout menu until the user quits or input
// ends. Checkout prints the amount due and empties the cart.
func (c *Console) RunCart(ctx context.Context) error {
	var cart exercise.Cart
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf(cartMenu)
		choice, err := c.askInt("Choose a menu option: ")
		if isEOF(err) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			p, err := c.readProduct()
			if err != nil {
				return err
			}
			qty, err := c.askInt("Quantity: ")
			if err != nil {
				return fmt.Errorf("read quantity: %w", err)
			}
			item := model.LineItem{Product: p, Quantity: qty}
			line := cart.Add(item)
			c.printf("Product: %s price: %d quantity: %d subtotal: %d\n", p.Name, p.Price, qty, line)
		case 2:
			c.printf("Total cost: %d\n", cart.Checkout())
		case 3:
			c.printf("Exiting.\n")
			return nil
		default:
			c.warn("Invalid menu choice.\n")
		}
	}
}

func (c *Console) readProduct() (model.Product, error) {
	name, err := c.askLine("Product name: ")
	if err != nil {
		return model.Product{}, fmt.Errorf("read product name: %w", err)
	}
	price, err := c.askInt("Product price: ")
	if err != nil {
		return model.Product{}, fmt.Errorf("read product price: %w", err)
	}
	return model.Product{Name: name, Price: price}, nil
}
