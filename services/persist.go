package services

import (
	"github.com/sirupsen/logrus"

	"voltstore/repository"
	"voltstore/store"
)

// persist writes the current snapshot after a successful mutation. A save
// failure is logged but never surfaced: the in-memory state is already
// updated and the next mutation retries the write.
func persist(st *store.Store, sr repository.SnapshotRepository, op string) {
	if err := sr.Save(st.Snapshot()); err != nil {
		logrus.WithError(err).Warnf("%s: snapshot save failed", op)
	}
}
