package services

import (
	"github.com/sirupsen/logrus"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/repository"
	"voltstore/store"
)

type ProductService struct {
	st *store.Store
	sr repository.SnapshotRepository
}

func NewProductService(st *store.Store, snapshotRepo repository.SnapshotRepository) ProductService {
	return ProductService{
		st: st,
		sr: snapshotRepo,
	}
}

func (ps *ProductService) GetProducts() []entities.Product {
	return ps.st.Products()
}

func (ps *ProductService) GetProductById(prodId int) (entities.Product, error) {
	return ps.st.ProductById(prodId)
}

func (ps *ProductService) GetProductBySlug(slug string) (entities.Product, error) {
	return ps.st.ProductBySlug(slug)
}

func (ps *ProductService) CreateProduct(in models.ProductCreate) (product entities.Product, err error) {
	if in.Name == "" {
		logrus.Info("CreateProduct: name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	if in.Price <= 0 || in.Stock < 0 {
		logrus.Info("CreateProduct: price must be positive and stock non-negative")
		err = models.ErrNotAllowed
		return
	}
	product = ps.st.AddProduct(in)
	persist(ps.st, ps.sr, "CreateProduct")
	return
}

func (ps *ProductService) UpdateProduct(prodId int, patch models.ProductPatch) (product entities.Product, err error) {
	product, err = ps.st.UpdateProduct(prodId, patch)
	if err != nil {
		return
	}
	persist(ps.st, ps.sr, "UpdateProduct")
	return
}

func (ps *ProductService) DeleteProduct(prodId int) (err error) {
	err = ps.st.DeleteProduct(prodId)
	if err != nil {
		return
	}
	persist(ps.st, ps.sr, "DeleteProduct")
	return
}

func (ps *ProductService) GetCategories() []entities.Category {
	return ps.st.Categories()
}
