package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func writeMenu(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write menu file: %v", err)
	}
	return path
}

func TestLoadMenu(t *testing.T) {
	path := writeMenu(t, `
items:
  - name: mocha
    description: Mocha
    price: "9.00"
extras:
  - name: Canela
    surcharge: "0.75"
`)

	menu, err := LoadMenu(path)
	if err != nil {
		t.Fatalf("LoadMenu returned error: %v", err)
	}
	if len(menu.Items) != 1 || menu.Items[0].Name != "mocha" {
		t.Errorf("Items = %+v, want one mocha entry", menu.Items)
	}
	if len(menu.Extras) != 1 || menu.Extras[0].Surcharge != "0.75" {
		t.Errorf("Extras = %+v, want one Canela entry", menu.Extras)
	}
}

func TestLoadMenuMissingFile(t *testing.T) {
	if _, err := LoadMenu(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadMenu should fail for a missing file")
	}
}

func TestLoadMenuInvalidYAML(t *testing.T) {
	path := writeMenu(t, "items: [whoops")
	if _, err := LoadMenu(path); err == nil {
		t.Error("LoadMenu should fail for invalid YAML")
	}
}

func TestMenuRegistry(t *testing.T) {
	menu := &Menu{
		Items: []MenuItem{
			{Name: "mocha", Description: "Mocha", Price: "9.00"},
			{Name: "americano", Price: "4.50"},
		},
	}

	registry, err := menu.Registry()
	if err != nil {
		t.Fatalf("Registry returned error: %v", err)
	}

	t.Run("menu items are registered", func(t *testing.T) {
		b, err := registry.Create("mocha")
		if err != nil {
			t.Fatalf("Create(mocha) returned error: %v", err)
		}
		if !b.Price().Equal(decimal.RequireFromString("9.00")) {
			t.Errorf("Price() = %s, want 9.00", b.Price())
		}
	})

	t.Run("description defaults to name", func(t *testing.T) {
		b, err := registry.Create("americano")
		if err != nil {
			t.Fatalf("Create(americano) returned error: %v", err)
		}
		if b.Description() != "americano" {
			t.Errorf("Description() = %q, want %q", b.Description(), "americano")
		}
	})

	t.Run("standard beverages stay available", func(t *testing.T) {
		b, err := registry.Create("espresso")
		if err != nil {
			t.Fatalf("Create(espresso) returned error: %v", err)
		}
		if !b.Price().Equal(decimal.RequireFromString("5.00")) {
			t.Errorf("Price() = %s, want 5.00", b.Price())
		}
	})
}

func TestMenuRegistryInvalidPrice(t *testing.T) {
	menu := &Menu{Items: []MenuItem{{Name: "mocha", Price: "not-a-price"}}}
	if _, err := menu.Registry(); err == nil {
		t.Error("Registry should fail for an unparseable price")
	}
}

func TestMenuDecorators(t *testing.T) {
	menu := &Menu{Extras: []MenuExtra{{Name: "Canela", Surcharge: "0.75"}}}

	decorators, err := menu.Decorators()
	if err != nil {
		t.Fatalf("Decorators returned error: %v", err)
	}

	wrap, ok := decorators["Canela"]
	if !ok {
		t.Fatal("expected a Canela decorator")
	}

	registry, _ := (&Menu{}).Registry()
	base, err := registry.Create("latte")
	if err != nil {
		t.Fatalf("Create(latte) returned error: %v", err)
	}

	b := wrap(base)
	if b.Description() != "Latte + Canela" {
		t.Errorf("Description() = %q, want %q", b.Description(), "Latte + Canela")
	}
	if !b.Price().Equal(decimal.RequireFromString("8.25")) {
		t.Errorf("Price() = %s, want 8.25", b.Price())
	}
}

func TestMenuDecoratorsInvalidSurcharge(t *testing.T) {
	menu := &Menu{Extras: []MenuExtra{{Name: "Canela", Surcharge: "??"}}}
	if _, err := menu.Decorators(); err == nil {
		t.Error("Decorators should fail for an unparseable surcharge")
	}
}
