package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adewale/termshop/internal/models"
)

// Inventory owns every product loaded from the warehouse files. Products are
// never deleted at runtime; only their stock moves as carts mutate.
type Inventory struct {
	dataDir      string
	defaultStock int
	products     []*models.Product
}

func NewInventory(dataDir string, defaultStock int) *Inventory {
	return &Inventory{dataDir: dataDir, defaultStock: defaultStock}
}

// Load scans the data directory for warehouse*.txt files. Each file holds one
// semicolon-separated list of name:price pairs. Malformed pairs are skipped
// individually. Filenames are sorted before IDs are assigned so the same data
// always yields the same IDs, whatever order the OS lists the directory in.
func (s *Inventory) Load() error {
	s.products = nil

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read data directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "warehouse") && strings.HasSuffix(name, ".txt") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	nextID := 1
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(s.dataDir, name))
		if err != nil {
			continue
		}
		content := strings.TrimSpace(string(raw))
		if content == "" {
			continue
		}
		for _, pair := range strings.Split(content, ";") {
			p, ok := parseProduct(pair)
			if !ok {
				continue
			}
			p.ID = nextID
			p.Stock = s.defaultStock
			p.InitialStock = s.defaultStock
			s.products = append(s.products, p)
			nextID++
		}
	}
	return nil
}

func parseProduct(pair string) (*models.Product, bool) {
	pair = strings.TrimSpace(pair)
	if pair == "" {
		return nil, false
	}
	fields := strings.Split(pair, ":")
	if len(fields) != 2 {
		return nil, false
	}
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return nil, false
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || price < 0 {
		return nil, false
	}
	return &models.Product{Name: name, Price: price}, true
}

func (s *Inventory) All() []*models.Product {
	return s.products
}

func (s *Inventory) ByID(id int) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Search matches products whose name contains any of the whitespace-separated
// query terms, case-insensitively. A product appears at most once however
// many terms hit it.
func (s *Inventory) Search(query string) []*models.Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []*models.Product
	for _, p := range s.products {
		name := strings.ToLower(p.Name)
		for _, term := range terms {
			if strings.Contains(name, term) {
				results = append(results, p)
				break
			}
		}
	}
	return results
}
