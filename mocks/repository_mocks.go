package mocks

import (
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repositories package. They let the service layer be
// unit-tested without a DB.

type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) Create(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepositoryMock) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type PlotRepositoryMock struct{ mock.Mock }

func (m *PlotRepositoryMock) Create(p *models.Plot) error {
	return m.Called(p).Error(0)
}

func (m *PlotRepositoryMock) FindByID(id uint) (*models.Plot, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotRepositoryMock) FindByIDs(ids []uint) ([]models.Plot, error) {
	args := m.Called(ids)
	if v := args.Get(0); v != nil {
		return v.([]models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotRepositoryMock) List(featuredOnly bool) ([]models.Plot, error) {
	args := m.Called(featuredOnly)
	if v := args.Get(0); v != nil {
		return v.([]models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotRepositoryMock) Update(p *models.Plot) error {
	return m.Called(p).Error(0)
}

func (m *PlotRepositoryMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type TeamRepositoryMock struct{ mock.Mock }

func (m *TeamRepositoryMock) Create(t *models.TeamMember) error {
	return m.Called(t).Error(0)
}

func (m *TeamRepositoryMock) FindByID(id uint) (*models.TeamMember, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepositoryMock) List() ([]models.TeamMember, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepositoryMock) Update(t *models.TeamMember) error {
	return m.Called(t).Error(0)
}

func (m *TeamRepositoryMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type TestimonialRepositoryMock struct{ mock.Mock }

func (m *TestimonialRepositoryMock) Create(t *models.Testimonial) error {
	return m.Called(t).Error(0)
}

func (m *TestimonialRepositoryMock) FindByID(id uint) (*models.Testimonial, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestimonialRepositoryMock) List() ([]models.Testimonial, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestimonialRepositoryMock) Update(t *models.Testimonial) error {
	return m.Called(t).Error(0)
}

func (m *TestimonialRepositoryMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type SiteRepositoryMock struct{ mock.Mock }

func (m *SiteRepositoryMock) EnsureContact() (*models.ContactInfo, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*models.ContactInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SiteRepositoryMock) SaveContact(c *models.ContactInfo) error {
	return m.Called(c).Error(0)
}

func (m *SiteRepositoryMock) EnsureStats() (*models.Stats, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*models.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SiteRepositoryMock) SaveStats(s *models.Stats) error {
	return m.Called(s).Error(0)
}

type WishlistRepositoryMock struct{ mock.Mock }

func (m *WishlistRepositoryMock) Create(w *models.Wishlist) error {
	return m.Called(w).Error(0)
}

func (m *WishlistRepositoryMock) FindOwned(id, userID uint) (*models.Wishlist, error) {
	args := m.Called(id, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistRepositoryMock) FindByUserAndPlot(userID, plotID uint) (*models.Wishlist, error) {
	args := m.Called(userID, plotID)
	if v := args.Get(0); v != nil {
		return v.(*models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistRepositoryMock) ListByUser(userID uint) ([]models.Wishlist, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistRepositoryMock) ListByPlot(plotID uint) ([]models.Wishlist, error) {
	args := m.Called(plotID)
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistRepositoryMock) ListAll() ([]models.Wishlist, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistRepositoryMock) Update(w *models.Wishlist) error {
	return m.Called(w).Error(0)
}

func (m *WishlistRepositoryMock) DeleteOwned(id, userID uint) error {
	return m.Called(id, userID).Error(0)
}

func (m *WishlistRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *WishlistRepositoryMock) CountByStatus() ([]models.WishlistStatusCount, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.WishlistStatusCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistRepositoryMock) TopPlots(limit int) ([]repositories.PlotCount, error) {
	args := m.Called(limit)
	if v := args.Get(0); v != nil {
		return v.([]repositories.PlotCount), args.Error(1)
	}
	return nil, args.Error(1)
}
