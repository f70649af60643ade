package repositories

import (
	"github.com/Modassir22/dream-home-hub/models"

	"gorm.io/gorm"
)

type TeamRepository interface {
	Create(m *models.TeamMember) error
	FindByID(id uint) (*models.TeamMember, error)
	List() ([]models.TeamMember, error) // by display order
	Update(m *models.TeamMember) error
	Delete(id uint) error
}

type teamRepo struct {
	crud[models.TeamMember]
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepo{crud: crud[models.TeamMember]{db: db}, db: db}
}

func (r *teamRepo) List() ([]models.TeamMember, error) {
	var items []models.TeamMember
	if err := r.db.Order("sort_order ASC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type TestimonialRepository interface {
	Create(t *models.Testimonial) error
	FindByID(id uint) (*models.Testimonial, error)
	List() ([]models.Testimonial, error) // by display order, then newest
	Update(t *models.Testimonial) error
	Delete(id uint) error
}

type testimonialRepo struct {
	crud[models.Testimonial]
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepo{crud: crud[models.Testimonial]{db: db}, db: db}
}

func (r *testimonialRepo) List() ([]models.Testimonial, error) {
	var items []models.Testimonial
	if err := r.db.Order("sort_order ASC").Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
