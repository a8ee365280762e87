package cart

import (
	"sort"
	"time"

	"github.com/oakratch/storefront-backend/internal/product"
)

// Item is a cart line enriched with a catalog snapshot.
type Item struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Summary is the full cart view returned by the API.
type Summary struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Catalog provides product details for enriching cart lines.
type Catalog interface {
	GetByID(id int) (product.Product, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Add merges qty into the existing quantity for the product, inserting the
// line when absent. A zero or missing qty counts as one.
func (s *Service) Add(userID, productID, qty int) (Summary, error) {
	if qty <= 0 {
		qty = 1
	}
	if _, err := s.catalog.GetByID(productID); err != nil {
		return Summary{}, err
	}

	items, err := s.repo.Get(userID)
	if err != nil {
		return Summary{}, err
	}
	items[productID] += qty
	if err := s.save(userID, items); err != nil {
		return Summary{}, err
	}
	return s.summarize(items), nil
}

// UpdateQuantity sets the quantity exactly; zero or below removes the line.
func (s *Service) UpdateQuantity(userID, productID, qty int) (Summary, error) {
	items, err := s.repo.Get(userID)
	if err != nil {
		return Summary{}, err
	}
	if qty <= 0 {
		delete(items, productID)
	} else {
		items[productID] = qty
	}
	if err := s.save(userID, items); err != nil {
		return Summary{}, err
	}
	return s.summarize(items), nil
}

// Remove deletes the line; removing an absent product is a no-op.
func (s *Service) Remove(userID, productID int) (Summary, error) {
	items, err := s.repo.Get(userID)
	if err != nil {
		return Summary{}, err
	}
	delete(items, productID)
	if err := s.save(userID, items); err != nil {
		return Summary{}, err
	}
	return s.summarize(items), nil
}

func (s *Service) Clear(userID int) error {
	if _, err := s.repo.Get(userID); err != nil {
		return err
	}
	return s.save(userID, map[int]int{})
}

func (s *Service) Get(userID int) (Summary, error) {
	items, err := s.repo.Get(userID)
	if err != nil {
		return Summary{}, err
	}
	return s.summarize(items), nil
}

func (s *Service) save(userID int, items map[int]int) error {
	return s.repo.Save(userID, items, time.Now().UTC().Format(time.RFC3339))
}

// summarize enriches the quantity map with catalog snapshots and derives
// the total and the item count. Lines whose product disappeared from the
// catalog are skipped rather than failing the whole cart.
func (s *Service) summarize(items map[int]int) Summary {
	out := Summary{Items: make([]Item, 0, len(items))}
	for pid, qty := range items {
		p, err := s.catalog.GetByID(pid)
		if err != nil {
			continue
		}
		out.Items = append(out.Items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  qty,
		})
		out.Total += p.Price * float64(qty)
		out.ItemCount += qty
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].ProductID < out.Items[j].ProductID })
	return out
}
