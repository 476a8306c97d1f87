package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"cafeteria-orders/pkg/cafeteria"
)

type Menu struct {
	Items  []MenuItem  `yaml:"items"`
	Extras []MenuExtra `yaml:"extras"`
}

type MenuItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

type MenuExtra struct {
	Name      string `yaml:"name"`
	Surcharge string `yaml:"surcharge"`
}

func LoadMenu(path string) (*Menu, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %v", err)
	}
	defer file.Close()

	menu := &Menu{}
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(menu); err != nil {
		return nil, fmt.Errorf("failed to decode menu file: %v", err)
	}
	return menu, nil
}

// Registry builds a beverage registry from the menu. The standard beverages
// are always present; menu entries add to (or override) them.
func (m *Menu) Registry() (*cafeteria.Registry, error) {
	registry := cafeteria.NewRegistry()
	for _, item := range m.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for menu item %q: %v", item.Name, err)
		}
		description := item.Description
		if description == "" {
			description = item.Name
		}
		registry.Register(item.Name, func() cafeteria.Beverage {
			return cafeteria.NewBeverage(description, price)
		})
	}
	return registry, nil
}

// Decorators returns one wrapping function per configured extra, keyed by
// the extra's name as written in the menu.
func (m *Menu) Decorators() (map[string]func(cafeteria.Beverage) cafeteria.Beverage, error) {
	decorators := make(map[string]func(cafeteria.Beverage) cafeteria.Beverage, len(m.Extras))
	for _, e := range m.Extras {
		surcharge, err := decimal.NewFromString(e.Surcharge)
		if err != nil {
			return nil, fmt.Errorf("invalid surcharge for extra %q: %v", e.Name, err)
		}
		label := e.Name
		decorators[label] = func(b cafeteria.Beverage) cafeteria.Beverage {
			return cafeteria.NewExtra(b, label, surcharge)
		}
	}
	return decorators, nil
}
