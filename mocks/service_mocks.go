package mocks

import (
	"io"

	"github.com/Modassir22/dream-home-hub/core"
	"github.com/Modassir22/dream-home-hub/models"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the services package, used to test the HTTP handlers
// without real business logic.

type AuthServiceMock struct{ mock.Mock }

func (m *AuthServiceMock) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthServiceMock) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthServiceMock) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthServiceMock) SeedAdmin(username, password, email string) (*models.User, bool, error) {
	args := m.Called(username, password, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

type PlotServiceMock struct{ mock.Mock }

func (m *PlotServiceMock) List(filter core.PlotFilter) ([]models.Plot, error) {
	args := m.Called(filter)
	if v := args.Get(0); v != nil {
		return v.([]models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotServiceMock) Featured() ([]models.Plot, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotServiceMock) Get(id uint) (*models.Plot, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotServiceMock) Create(req models.PlotRequest) (*models.Plot, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotServiceMock) Update(id uint, req models.UpdatePlotRequest) (*models.Plot, error) {
	args := m.Called(id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Plot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlotServiceMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type TeamServiceMock struct{ mock.Mock }

func (m *TeamServiceMock) List() ([]models.TeamMember, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamServiceMock) Create(req models.TeamMemberRequest) (*models.TeamMember, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamServiceMock) Update(id uint, req models.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	args := m.Called(id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamServiceMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type TestimonialServiceMock struct{ mock.Mock }

func (m *TestimonialServiceMock) List() ([]models.Testimonial, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestimonialServiceMock) Get(id uint) (*models.Testimonial, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestimonialServiceMock) Create(req models.TestimonialRequest) (*models.Testimonial, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestimonialServiceMock) Update(id uint, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	args := m.Called(id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestimonialServiceMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type SiteServiceMock struct{ mock.Mock }

func (m *SiteServiceMock) Contact() (*models.ContactInfo, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*models.ContactInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SiteServiceMock) UpdateContact(req models.ContactInfoRequest) (*models.ContactInfo, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.ContactInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SiteServiceMock) Stats() (*models.Stats, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*models.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SiteServiceMock) UpdateStats(req models.StatsRequest) (*models.Stats, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}

type WishlistServiceMock struct{ mock.Mock }

func (m *WishlistServiceMock) ListMine(userID uint) ([]models.Wishlist, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) Add(userID uint, req models.AddWishlistRequest) (*models.Wishlist, error) {
	args := m.Called(userID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) Update(userID, id uint, req models.UpdateWishlistRequest) (*models.Wishlist, error) {
	args := m.Called(userID, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) Remove(userID, id uint) error {
	return m.Called(userID, id).Error(0)
}

func (m *WishlistServiceMock) Check(userID, plotID uint) (*models.WishlistCheck, error) {
	args := m.Called(userID, plotID)
	if v := args.Get(0); v != nil {
		return v.(*models.WishlistCheck), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) All() ([]models.Wishlist, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) ByPlot(plotID uint) ([]models.Wishlist, error) {
	args := m.Called(plotID)
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) ByUser(userID uint) ([]models.Wishlist, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Wishlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WishlistServiceMock) Stats() (*models.WishlistStats, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*models.WishlistStats), args.Error(1)
	}
	return nil, args.Error(1)
}

type UploadServiceMock struct{ mock.Mock }

func (m *UploadServiceMock) SaveImage(r io.Reader) (*models.UploadResponse, error) {
	args := m.Called(r)
	if v := args.Get(0); v != nil {
		return v.(*models.UploadResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
