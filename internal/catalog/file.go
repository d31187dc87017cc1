package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/starletters/internal/model"
)

// File is the TOML representation of a catalog.
type File struct {
	Categories []CategoryEntry `toml:"category"`
	Letters    []LetterEntry   `toml:"letter"`
	Final      FinalEntry      `toml:"final"`
}

// CategoryEntry maps a [[category]] table.
type CategoryEntry struct {
	Name   string `toml:"name"`
	Symbol string `toml:"symbol"`
	Total  int    `toml:"total"`
}

// LetterEntry maps a [[letter]] table.
type LetterEntry struct {
	ID       int    `toml:"id"`
	Category string `toml:"category"`
	Text     string `toml:"text"`
}

// FinalEntry maps the [final] table.
type FinalEntry struct {
	ID     int    `toml:"id"`
	Title  string `toml:"title"`
	Symbol string `toml:"symbol"`
	Text   string `toml:"text"`
}

// Load reads a catalog file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return f.Catalog()
}

// Catalog converts the file representation into a validated catalog.
func (f File) Catalog() (*Catalog, error) {
	categories := make([]model.Category, 0, len(f.Categories))
	for _, entry := range f.Categories {
		categories = append(categories, model.Category{Name: entry.Name, Symbol: entry.Symbol, Total: entry.Total})
	}
	items := make([]model.Item, 0, len(f.Letters))
	for _, entry := range f.Letters {
		items = append(items, model.Item{ID: entry.ID, Category: entry.Category, Text: entry.Text})
	}
	title := f.Final.Title
	if title == "" {
		title = "The Final Letter"
	}
	final := model.FinalItem{
		Item: model.Item{
			ID:             f.Final.ID,
			Category:       title,
			CategorySymbol: f.Final.Symbol,
			Text:           f.Final.Text,
		},
		Title: title,
	}
	return New(categories, items, final)
}

// ToFile converts a catalog into its file representation.
func ToFile(c *Catalog) File {
	var f File
	for _, cat := range c.categories {
		f.Categories = append(f.Categories, CategoryEntry{Name: cat.Name, Symbol: cat.Symbol, Total: cat.Total})
	}
	for _, item := range c.items {
		f.Letters = append(f.Letters, LetterEntry{ID: item.ID, Category: item.Category, Text: item.Text})
	}
	f.Final = FinalEntry{
		ID:     c.final.ID,
		Title:  c.final.Title,
		Symbol: c.final.CategorySymbol,
		Text:   c.final.Text,
	}
	return f
}

// Write encodes a catalog as TOML.
func Write(w io.Writer, c *Catalog) error {
	if err := toml.NewEncoder(w).Encode(ToFile(c)); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}
