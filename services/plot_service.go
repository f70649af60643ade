package services

import (
	"fmt"

	"github.com/Modassir22/dream-home-hub/core"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"
	"github.com/Modassir22/dream-home-hub/utils/redislog"
)

type PlotService interface {
	List(filter core.PlotFilter) ([]models.Plot, error) // newest first, filtered
	Featured() ([]models.Plot, error)
	Get(id uint) (*models.Plot, error)
	Create(req models.PlotRequest) (*models.Plot, error)
	Update(id uint, req models.UpdatePlotRequest) (*models.Plot, error)
	Delete(id uint) error
}

type plotService struct {
	repo repositories.PlotRepository
	log  *redislog.Logger
}

func NewPlotService(repo repositories.PlotRepository, rlog *redislog.Logger) PlotService {
	return &plotService{repo: repo, log: rlog}
}

func (s *plotService) List(filter core.PlotFilter) ([]models.Plot, error) {
	if err := filter.Validate(); err != nil {
		return nil, invalid("%s", err.Error())
	}
	items, err := s.repo.List(false)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		return items, nil
	}
	out := make([]models.Plot, 0, len(items))
	for i := range items {
		if filter.Match(items[i].Facts()) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

func (s *plotService) Featured() ([]models.Plot, error) {
	return s.repo.List(true)
}

func (s *plotService) Get(id uint) (*models.Plot, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound("Plot not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *plotService) Create(req models.PlotRequest) (*models.Plot, error) {
	p := &models.Plot{
		Title:        req.Title,
		Location:     req.Location,
		Area:         req.Area,
		Price:        req.Price,
		PricePerSqFt: req.PricePerSqFt,
		Status:       req.Status,
		Image:        req.Image,
		Images:       models.StringList(req.Images),
		Description:  req.Description,
		Amenities:    models.StringList(req.Amenities),
		IsFeatured:   req.IsFeatured,
	}
	if p.Status == "" {
		p.Status = core.PlotAvailable
	}
	if !core.IsPlotStatus(p.Status) {
		return nil, invalid("Invalid plot status %q", p.Status)
	}
	p.PriceValue = numericOr(req.PriceValue, p.Price)
	p.AreaSqFt = int(numericOr(intPtr64(req.AreaSqFt), p.Area))

	if err := s.repo.Create(p); err != nil {
		s.log.Error("plot create error", map[string]string{"err": err.Error()})
		return nil, err
	}
	s.log.Info("plot created", map[string]string{"plot_id": fmt.Sprint(p.ID)})
	return p, nil
}

// Update merges the provided fields. Changing a display string without its
// numeric twin re-derives the number so filtering stays in step.
func (s *plotService) Update(id uint, req models.UpdatePlotRequest) (*models.Plot, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	setStr(&p.Title, req.Title)
	setStr(&p.Location, req.Location)
	setStr(&p.PricePerSqFt, req.PricePerSqFt)
	setStr(&p.Image, req.Image)
	setStr(&p.Description, req.Description)
	if req.Price != nil {
		p.Price = *req.Price
		if req.PriceValue == nil {
			p.PriceValue = core.DigitsValue(p.Price)
		}
	}
	if req.PriceValue != nil {
		p.PriceValue = *req.PriceValue
	}
	if req.Area != nil {
		p.Area = *req.Area
		if req.AreaSqFt == nil {
			p.AreaSqFt = int(core.DigitsValue(p.Area))
		}
	}
	if req.AreaSqFt != nil {
		p.AreaSqFt = *req.AreaSqFt
	}
	if req.Status != nil {
		if !core.IsPlotStatus(*req.Status) {
			return nil, invalid("Invalid plot status %q", *req.Status)
		}
		p.Status = *req.Status
	}
	if req.Images != nil {
		p.Images = models.StringList(*req.Images)
	}
	if req.Amenities != nil {
		p.Amenities = models.StringList(*req.Amenities)
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Update(p); err != nil {
		s.log.Error("plot update error", map[string]string{"plot_id": fmt.Sprint(id), "err": err.Error()})
		return nil, err
	}
	s.log.Info("plot updated", map[string]string{"plot_id": fmt.Sprint(id)})
	return p, nil
}

func (s *plotService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if repositories.IsNotFound(err) {
			return notFound("Plot not found")
		}
		return err
	}
	s.log.Info("plot deleted", map[string]string{"plot_id": fmt.Sprint(id)})
	return nil
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func numericOr(v *int64, display string) int64 {
	if v != nil {
		return *v
	}
	return core.DigitsValue(display)
}

func intPtr64(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
