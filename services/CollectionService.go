package services

import (
	"github.com/sirupsen/logrus"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/repository"
	"voltstore/store"
)

type CollectionService struct {
	st *store.Store
	sr repository.SnapshotRepository
}

func NewCollectionService(st *store.Store, snapshotRepo repository.SnapshotRepository) CollectionService {
	return CollectionService{
		st: st,
		sr: snapshotRepo,
	}
}

func (cls *CollectionService) GetCollections() []entities.Collection {
	return cls.st.Collections()
}

func (cls *CollectionService) GetCollectionById(id int) (entities.Collection, error) {
	return cls.st.CollectionById(id)
}

// GetCollectionProducts resolves a collection's product id list against the
// catalog, skipping ids whose products were deleted since.
func (cls *CollectionService) GetCollectionProducts(id int) (products []entities.Product, err error) {
	col, err := cls.st.CollectionById(id)
	if err != nil {
		return
	}
	for _, pid := range col.ProductIds {
		if p, e := cls.st.ProductById(pid); e == nil {
			products = append(products, p)
		}
	}
	return
}

func (cls *CollectionService) CreateCollection(in models.CollectionCreate) (collection entities.Collection, err error) {
	if in.Name == "" {
		logrus.Info("CreateCollection: name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	collection = cls.st.AddCollection(in)
	persist(cls.st, cls.sr, "CreateCollection")
	return
}

func (cls *CollectionService) UpdateCollection(id int, patch models.CollectionPatch) (collection entities.Collection, err error) {
	collection, err = cls.st.UpdateCollection(id, patch)
	if err != nil {
		return
	}
	persist(cls.st, cls.sr, "UpdateCollection")
	return
}

func (cls *CollectionService) DeleteCollection(id int) (err error) {
	err = cls.st.DeleteCollection(id)
	if err != nil {
		return
	}
	persist(cls.st, cls.sr, "DeleteCollection")
	return
}
