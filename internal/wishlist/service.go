package wishlist

import (
	"time"

	"github.com/oakratch/storefront-backend/internal/product"
)

// Item is a saved product snapshot. Wishlists carry no quantity.
type Item struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// Catalog provides product details for enriching wishlist entries.
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

// Add inserts the product into the wishlist. Adding a product that is
// already saved is a no-op, so the operation is idempotent.
func (s *Service) Add(userID, productID int) ([]Item, error) {
	if _, err := s.catalog.GetByID(productID); err != nil {
		return nil, err
	}

	ids, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == productID {
			return s.enrich(ids), nil
		}
	}
	ids = append(ids, productID)
	if err := s.save(userID, ids); err != nil {
		return nil, err
	}
	return s.enrich(ids), nil
}

// Remove deletes the product from the wishlist; absent ids are a no-op.
func (s *Service) Remove(userID, productID int) ([]Item, error) {
	ids, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	kept := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	if len(kept) != len(ids) {
		if err := s.save(userID, kept); err != nil {
			return nil, err
		}
	}
	return s.enrich(kept), nil
}

func (s *Service) List(userID int) ([]Item, error) {
	ids, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ids), nil
}

// Contains reports wishlist membership for a single product.
func (s *Service) Contains(userID, productID int) (bool, error) {
	ids, err := s.repo.Get(userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) save(userID int, ids []int) error {
	return s.repo.Save(userID, ids, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) enrich(ids []int) []Item {
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		p, err := s.catalog.GetByID(id)
		if err != nil {
			continue
		}
		out = append(out, Item{ProductID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image})
	}
	return out
}
