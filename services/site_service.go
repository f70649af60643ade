package services

import (
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"
	"github.com/Modassir22/dream-home-hub/utils/redislog"
)

// SiteService serves and edits the ContactInfo and Stats singletons. Reads
// seed the defaults on first use.
type SiteService interface {
	Contact() (*models.ContactInfo, error)
	UpdateContact(req models.ContactInfoRequest) (*models.ContactInfo, error)
	Stats() (*models.Stats, error)
	UpdateStats(req models.StatsRequest) (*models.Stats, error)
}

type siteService struct {
	repo repositories.SiteRepository
	log  *redislog.Logger
}

func NewSiteService(repo repositories.SiteRepository, rlog *redislog.Logger) SiteService {
	return &siteService{repo: repo, log: rlog}
}

func (s *siteService) Contact() (*models.ContactInfo, error) {
	return s.repo.EnsureContact()
}

// UpdateContact merges into the (ensured) singleton; the save stamps UpdatedAt.
func (s *siteService) UpdateContact(req models.ContactInfoRequest) (*models.ContactInfo, error) {
	c, err := s.repo.EnsureContact()
	if err != nil {
		return nil, err
	}
	setStr(&c.Phone, req.Phone)
	setStr(&c.WhatsApp, req.WhatsApp)
	setStr(&c.Email, req.Email)
	setStr(&c.Address, req.Address)
	setStr(&c.WorkingHours, req.WorkingHours)
	if c.Phone == "" || c.WhatsApp == "" || c.Email == "" || c.Address == "" {
		return nil, invalid("phone, whatsapp, email and address cannot be empty")
	}
	if err := s.repo.SaveContact(c); err != nil {
		return nil, err
	}
	s.log.Info("contact info updated", nil)
	return c, nil
}

func (s *siteService) Stats() (*models.Stats, error) {
	return s.repo.EnsureStats()
}

func (s *siteService) UpdateStats(req models.StatsRequest) (*models.Stats, error) {
	st, err := s.repo.EnsureStats()
	if err != nil {
		return nil, err
	}
	if req.YearsExperience != nil {
		st.YearsExperience = *req.YearsExperience
	}
	if req.HappyFamilies != nil {
		st.HappyFamilies = *req.HappyFamilies
	}
	if req.ActivePlots != nil {
		st.ActivePlots = *req.ActivePlots
	}
	if st.YearsExperience < 0 || st.HappyFamilies < 0 || st.ActivePlots < 0 {
		return nil, invalid("stats cannot be negative")
	}
	if err := s.repo.SaveStats(st); err != nil {
		return nil, err
	}
	s.log.Info("stats updated", nil)
	return st, nil
}
