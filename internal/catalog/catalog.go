package catalog

import (
	"fmt"
	"os"

	"dashbot/internal/domain"

	"github.com/govalues/decimal"
	"gopkg.in/yaml.v3"
)

// Item is one orderable menu entry
type Item struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Label returns the display line for a menu, e.g. "Margherita Pizza - RM 25.00"
func (i Item) Label() string {
	return fmt.Sprintf("%s - RM %s", i.Name, i.Price)
}

// Restaurant groups menu items under one vendor
type Restaurant struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

// Catalog is the static restaurant/menu lookup table
type Catalog struct {
	Restaurants []Restaurant `yaml:"restaurants"`
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Restaurants) == 0 {
		return fmt.Errorf("no restaurants defined")
	}
	for i, r := range c.Restaurants {
		if r.Name == "" {
			return fmt.Errorf("restaurant %d has no name", i)
		}
		if len(r.Items) == 0 {
			return fmt.Errorf("restaurant %q has no items", r.Name)
		}
		for j, item := range r.Items {
			if item.Name == "" {
				return fmt.Errorf("restaurant %q item %d has no name", r.Name, j)
			}
			if _, err := decimal.Parse(item.Price); err != nil {
				return fmt.Errorf("restaurant %q item %q has bad price %q: %w", r.Name, item.Name, item.Price, err)
			}
		}
	}
	return nil
}

// Restaurant returns the restaurant at index i
func (c *Catalog) Restaurant(i int) (*Restaurant, error) {
	if i < 0 || i >= len(c.Restaurants) {
		return nil, fmt.Errorf("restaurant %d: %w", i, domain.ErrIndexOutOfRange)
	}
	return &c.Restaurants[i], nil
}

// Item returns the restaurant at index i and its item at index j
func (c *Catalog) Item(i, j int) (*Restaurant, *Item, error) {
	r, err := c.Restaurant(i)
	if err != nil {
		return nil, nil, err
	}
	if j < 0 || j >= len(r.Items) {
		return nil, nil, fmt.Errorf("restaurant %q item %d: %w", r.Name, j, domain.ErrIndexOutOfRange)
	}
	return r, &r.Items[j], nil
}

// Default returns the built-in catalog, used when no catalog file is configured
func Default() *Catalog {
	return &Catalog{Restaurants: []Restaurant{
		{
			Name: "Pizza Express",
			Items: []Item{
				{Name: "Margherita Pizza", Price: "25.00"},
				{Name: "Pepperoni Pizza", Price: "28.00"},
				{Name: "Hawaiian Pizza", Price: "30.00"},
			},
		},
		{
			Name: "Noodles House",
			Items: []Item{
				{Name: "Beef Noodles", Price: "18.00"},
				{Name: "Chicken Noodles", Price: "16.00"},
				{Name: "Veggie Noodles", Price: "14.00"},
			},
		},
		{
			Name: "Fried Chicken Co",
			Items: []Item{
				{Name: "Original Fried Chicken", Price: "15.00"},
				{Name: "Spicy Fried Chicken", Price: "16.00"},
				{Name: "Chicken Combo", Price: "22.00"},
			},
		},
		{
			Name: "Healthy Bites",
			Items: []Item{
				{Name: "Caesar Salad", Price: "20.00"},
				{Name: "Greek Salad", Price: "18.00"},
				{Name: "Quinoa Bowl", Price: "22.00"},
			},
		},
		{
			Name: "Sushi Station",
			Items: []Item{
				{Name: "Salmon Sushi Set", Price: "35.00"},
				{Name: "Mixed Sushi", Price: "30.00"},
				{Name: "Tuna Roll", Price: "25.00"},
			},
		},
	}}
}
