package repositories

import (
	"github.com/Modassir22/dream-home-hub/models"

	"gorm.io/gorm"
)

type PlotRepository interface {
	Create(p *models.Plot) error
	FindByID(id uint) (*models.Plot, error)
	FindByIDs(ids []uint) ([]models.Plot, error)
	List(featuredOnly bool) ([]models.Plot, error) // newest first
	Update(p *models.Plot) error
	Delete(id uint) error // also drops wishlist entries for the plot
}

type plotRepo struct {
	crud[models.Plot]
	db *gorm.DB
}

func NewPlotRepository(db *gorm.DB) PlotRepository {
	return &plotRepo{crud: crud[models.Plot]{db: db}, db: db}
}

func (r *plotRepo) FindByIDs(ids []uint) ([]models.Plot, error) {
	var items []models.Plot
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *plotRepo) List(featuredOnly bool) ([]models.Plot, error) {
	var items []models.Plot
	q := r.db.Model(&models.Plot{})
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete runs in one transaction so no wishlist entry is left pointing at a
// removed plot, whether or not the driver enforces foreign keys.
func (r *plotRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plot_id = ?", id).Delete(&models.Wishlist{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Plot{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
