package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByCategory(category string) []Product {
	return s.repo.ListByCategory(category)
}

func (s *Service) Search(query string) []Product {
	return s.repo.Search(query)
}
