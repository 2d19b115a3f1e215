package store

import (
	"fmt"
	"strings"
	"time"

	"voltstore/entities"
	"voltstore/models"
)

func (s *Store) Products() []entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Product{}, s.products...)
}

func (s *Store) ProductById(id int) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.productById(id); ok {
		return p, nil
	}
	return entities.Product{}, models.ErrNotFound
}

func (s *Store) ProductBySlug(slug string) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return entities.Product{}, models.ErrNotFound
}

// AddProduct assigns the next id, derives slug and sku, and zeroes the
// rating fields; new products have no review history.
func (s *Store) AddProduct(in models.ProductCreate) entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxId := 0
	for _, p := range s.products {
		if p.Id > maxId {
			maxId = p.Id
		}
	}

	p := entities.Product{
		Id:            maxId + 1,
		Name:          in.Name,
		Slug:          slugify(in.Name),
		Sku:           fmt.Sprintf("PROD-%d", time.Now().UnixMilli()),
		Category:      in.Category,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Description:   in.Description,
		Image:         in.Image,
		Colors:        in.Colors,
		Sizes:         in.Sizes,
		Stock:         in.Stock,
		Featured:      in.Featured,
		New:           in.New,
		Sale:          in.Sale,
	}
	s.products = append(s.products, p)
	return p
}

func (s *Store) UpdateProduct(id int, patch models.ProductPatch) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Id != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.OriginalPrice != nil {
			p.OriginalPrice = patch.OriginalPrice
		}
		if patch.ClearOriginalPrice {
			p.OriginalPrice = nil
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Colors != nil {
			p.Colors = *patch.Colors
		}
		if patch.Sizes != nil {
			p.Sizes = *patch.Sizes
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		if patch.New != nil {
			p.New = *patch.New
		}
		if patch.Sale != nil {
			p.Sale = *patch.Sale
		}
		return *p, nil
	}
	return entities.Product{}, models.ErrNotFound
}

func (s *Store) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Id == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Store) Categories() []entities.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Category{}, s.categories...)
}

func (s *Store) Collections() []entities.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Collection{}, s.collections...)
}

func (s *Store) CollectionById(id int) (entities.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.collections {
		if c.Id == id {
			return c, nil
		}
	}
	return entities.Collection{}, models.ErrNotFound
}

func (s *Store) AddCollection(in models.CollectionCreate) entities.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxId := 0
	for _, c := range s.collections {
		if c.Id > maxId {
			maxId = c.Id
		}
	}
	c := entities.Collection{
		Id:          maxId + 1,
		Name:        in.Name,
		Slug:        slugify(in.Name),
		Description: in.Description,
		Image:       in.Image,
		ProductIds:  in.ProductIds,
	}
	s.collections = append(s.collections, c)
	return c
}

func (s *Store) UpdateCollection(id int, patch models.CollectionPatch) (entities.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.collections {
		if s.collections[i].Id != id {
			continue
		}
		c := &s.collections[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Image != nil {
			c.Image = *patch.Image
		}
		if patch.ProductIds != nil {
			c.ProductIds = *patch.ProductIds
		}
		return *c, nil
	}
	return entities.Collection{}, models.ErrNotFound
}

func (s *Store) DeleteCollection(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.collections {
		if s.collections[i].Id == id {
			s.collections = append(s.collections[:i], s.collections[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Store) productById(id int) (entities.Product, bool) {
	for _, p := range s.products {
		if p.Id == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
