package inmemdb

import (
	"time"

	"github.com/trezcool/hostela/core/settings"
)

type settingsRepository struct {
	db *settingsTable
}

func NewSettingsRepository(db *DB) settings.Repository {
	return &settingsRepository{db: db.settings}
}

func (repo *settingsRepository) GetSettings() (settings.SystemSettings, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.row, nil
}

func (repo *settingsRepository) SaveSettings(s settings.SystemSettings) (settings.SystemSettings, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s.UpdatedAt = time.Now().UTC()
	repo.db.row = s
	return s, nil
}
