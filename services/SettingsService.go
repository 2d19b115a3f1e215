package services

import (
	"github.com/sirupsen/logrus"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/repository"
	"voltstore/store"
)

type SettingsService struct {
	st *store.Store
	sr repository.SnapshotRepository
}

func NewSettingsService(st *store.Store, snapshotRepo repository.SnapshotRepository) SettingsService {
	return SettingsService{
		st: st,
		sr: snapshotRepo,
	}
}

func (ss *SettingsService) GetSettings() entities.Settings {
	return ss.st.Settings()
}

// UpdateSettings replaces the singleton wholesale, the way the admin form
// saves it. Shipping amounts must stay non-negative or every cart total
// breaks.
func (ss *SettingsService) UpdateSettings(settings entities.Settings) (err error) {
	if settings.FreeShippingThreshold < 0 || settings.StandardShipping < 0 || settings.ExpressShipping < 0 {
		logrus.Info("UpdateSettings: negative shipping values rejected")
		err = models.ErrNotAllowed
		return
	}
	ss.st.UpdateSettings(settings)
	persist(ss.st, ss.sr, "UpdateSettings")
	return
}
