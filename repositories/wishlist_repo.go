package repositories

import (
	"github.com/Modassir22/dream-home-hub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlotCount is one row of the "most wishlisted plots" aggregate.
type PlotCount struct {
	PlotID uint
	Count  int64
}

type WishlistRepository interface {
	// Create fails with ErrDuplicate if (UserID, PlotID) already exists.
	Create(w *models.Wishlist) error
	// FindOwned returns the entry only if it belongs to userID, with its plot.
	FindOwned(id, userID uint) (*models.Wishlist, error)
	FindByUserAndPlot(userID, plotID uint) (*models.Wishlist, error)
	ListByUser(userID uint) ([]models.Wishlist, error)
	ListByPlot(plotID uint) ([]models.Wishlist, error)
	ListAll() ([]models.Wishlist, error)
	Update(w *models.Wishlist) error
	// DeleteOwned removes the entry if it belongs to userID, ErrRecordNotFound otherwise.
	DeleteOwned(id, userID uint) error

	Count() (int64, error)
	CountByStatus() ([]models.WishlistStatusCount, error)
	TopPlots(limit int) ([]PlotCount, error)
}

type wishlistRepo struct{ db *gorm.DB }

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepo{db: db}
}

// withUser loads only the public user columns.
func withUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "username", "email", "role", "created_at", "updated_at")
	})
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("added_at DESC").Order("id DESC")
}

func (r *wishlistRepo) Create(w *models.Wishlist) error {
	return translate(r.db.Omit(clause.Associations).Create(w).Error)
}

func (r *wishlistRepo) FindOwned(id, userID uint) (*models.Wishlist, error) {
	var w models.Wishlist
	if err := r.db.Preload("Plot").Where("id = ? AND user_id = ?", id, userID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *wishlistRepo) FindByUserAndPlot(userID, plotID uint) (*models.Wishlist, error) {
	var w models.Wishlist
	if err := r.db.Where("user_id = ? AND plot_id = ?", userID, plotID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *wishlistRepo) ListByUser(userID uint) ([]models.Wishlist, error) {
	var items []models.Wishlist
	err := newestFirst(r.db.Preload("Plot").Where("user_id = ?", userID)).Find(&items).Error
	return items, err
}

func (r *wishlistRepo) ListByPlot(plotID uint) ([]models.Wishlist, error) {
	var items []models.Wishlist
	err := newestFirst(withUser(r.db).Where("plot_id = ?", plotID)).Find(&items).Error
	return items, err
}

func (r *wishlistRepo) ListAll() ([]models.Wishlist, error) {
	var items []models.Wishlist
	err := newestFirst(withUser(r.db).Preload("Plot")).Find(&items).Error
	return items, err
}

// Update only writes the user-editable columns; the preloaded plot is never saved back.
func (r *wishlistRepo) Update(w *models.Wishlist) error {
	return r.db.Model(w).Select("status", "notes", "updated_at").Omit(clause.Associations).Updates(w).Error
}

func (r *wishlistRepo) DeleteOwned(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Wishlist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wishlistRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Wishlist{}).Count(&n).Error
	return n, err
}

func (r *wishlistRepo) CountByStatus() ([]models.WishlistStatusCount, error) {
	var rows []models.WishlistStatusCount
	err := r.db.Model(&models.Wishlist{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&rows).Error
	return rows, err
}

// TopPlots ranks plots by number of entries; ties go to the lower plot id.
func (r *wishlistRepo) TopPlots(limit int) ([]PlotCount, error) {
	var rows []PlotCount
	err := r.db.Model(&models.Wishlist{}).
		Select("plot_id, COUNT(*) AS count").
		Group("plot_id").
		Order("count DESC").
		Order("plot_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
