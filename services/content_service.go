package services

import (
	"fmt"

	"github.com/Modassir22/dream-home-hub/core"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"
	"github.com/Modassir22/dream-home-hub/utils/redislog"
)

// TeamService manages the About page team list.
type TeamService interface {
	List() ([]models.TeamMember, error)
	Create(req models.TeamMemberRequest) (*models.TeamMember, error)
	Update(id uint, req models.UpdateTeamMemberRequest) (*models.TeamMember, error)
	Delete(id uint) error
}

type teamService struct {
	repo repositories.TeamRepository
	log  *redislog.Logger
}

func NewTeamService(repo repositories.TeamRepository, rlog *redislog.Logger) TeamService {
	return &teamService{repo: repo, log: rlog}
}

func (s *teamService) List() ([]models.TeamMember, error) { return s.repo.List() }

func (s *teamService) Create(req models.TeamMemberRequest) (*models.TeamMember, error) {
	m := &models.TeamMember{
		Name:     core.NormalizeName(req.Name),
		Position: req.Position,
		Image:    req.Image,
		Bio:      req.Bio,
		Email:    req.Email,
		Phone:    req.Phone,
		Order:    req.Order,
	}
	if m.Name == "" {
		return nil, invalid("Name is required")
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	s.log.Info("team member created", map[string]string{"member_id": fmt.Sprint(m.ID)})
	return m, nil
}

func (s *teamService) Update(id uint, req models.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound("Team member not found")
		}
		return nil, err
	}
	if req.Name != nil {
		m.Name = core.NormalizeName(*req.Name)
	}
	setStr(&m.Position, req.Position)
	setStr(&m.Image, req.Image)
	setStr(&m.Bio, req.Bio)
	setStr(&m.Email, req.Email)
	setStr(&m.Phone, req.Phone)
	if req.Order != nil {
		m.Order = *req.Order
	}
	if err := s.repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *teamService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if repositories.IsNotFound(err) {
			return notFound("Team member not found")
		}
		return err
	}
	s.log.Info("team member deleted", map[string]string{"member_id": fmt.Sprint(id)})
	return nil
}

// TestimonialService manages customer reviews; ratings are clamped to 1..5.
type TestimonialService interface {
	List() ([]models.Testimonial, error)
	Get(id uint) (*models.Testimonial, error)
	Create(req models.TestimonialRequest) (*models.Testimonial, error)
	Update(id uint, req models.UpdateTestimonialRequest) (*models.Testimonial, error)
	Delete(id uint) error
}

type testimonialService struct {
	repo repositories.TestimonialRepository
	log  *redislog.Logger
}

func NewTestimonialService(repo repositories.TestimonialRepository, rlog *redislog.Logger) TestimonialService {
	return &testimonialService{repo: repo, log: rlog}
}

func (s *testimonialService) List() ([]models.Testimonial, error) { return s.repo.List() }

func (s *testimonialService) Get(id uint) (*models.Testimonial, error) {
	t, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound("Testimonial not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Create(req models.TestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Name:     core.NormalizeName(req.Name),
		Location: req.Location,
		Image:    req.Image,
		Review:   req.Review,
		Rating:   core.ClampRating(req.Rating),
		Order:    req.Order,
	}
	if t.Name == "" {
		return nil, invalid("Name is required")
	}
	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	s.log.Info("testimonial created", map[string]string{"testimonial_id": fmt.Sprint(t.ID)})
	return t, nil
}

func (s *testimonialService) Update(id uint, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		t.Name = core.NormalizeName(*req.Name)
	}
	setStr(&t.Location, req.Location)
	setStr(&t.Image, req.Image)
	setStr(&t.Review, req.Review)
	if req.Rating != nil {
		t.Rating = core.ClampRating(*req.Rating)
	}
	if req.Order != nil {
		t.Order = *req.Order
	}
	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if repositories.IsNotFound(err) {
			return notFound("Testimonial not found")
		}
		return err
	}
	s.log.Info("testimonial deleted", map[string]string{"testimonial_id": fmt.Sprint(id)})
	return nil
}
