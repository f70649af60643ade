package repositories

import (
	"github.com/Modassir22/dream-home-hub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteRepository stores the two singleton records. Both live at
// models.SingletonID.
type SiteRepository interface {
	EnsureContact() (*models.ContactInfo, error)
	SaveContact(c *models.ContactInfo) error
	EnsureStats() (*models.Stats, error)
	SaveStats(s *models.Stats) error
}

type siteRepo struct{ db *gorm.DB }

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepo{db: db}
}

func (r *siteRepo) EnsureContact() (*models.ContactInfo, error) {
	def := models.DefaultContactInfo()
	if err := ensure(r.db, &def); err != nil {
		return nil, err
	}
	var c models.ContactInfo
	if err := r.db.First(&c, models.SingletonID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *siteRepo) SaveContact(c *models.ContactInfo) error {
	c.ID = models.SingletonID
	return r.db.Save(c).Error
}

func (r *siteRepo) EnsureStats() (*models.Stats, error) {
	def := models.DefaultStats()
	if err := ensure(r.db, &def); err != nil {
		return nil, err
	}
	var s models.Stats
	if err := r.db.First(&s, models.SingletonID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *siteRepo) SaveStats(s *models.Stats) error {
	s.ID = models.SingletonID
	return r.db.Save(s).Error
}

// ensure inserts def unless a row with its primary key already exists. The
// existence check only saves a write; ON CONFLICT DO NOTHING is what keeps
// two concurrent first reads from creating two singletons.
func ensure[T any](db *gorm.DB, def *T) error {
	var n int64
	if err := db.Model(new(T)).Where("id = ?", models.SingletonID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(def).Error
}
