package services

import (
	"fmt"
	"time"

	"github.com/Modassir22/dream-home-hub/core"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"
	"github.com/Modassir22/dream-home-hub/utils/redislog"
)

// topPlotsLimit is how many plots the admin analytics view ranks.
const topPlotsLimit = 5

// WishlistService is the per-user saved-plots list plus the admin views over
// every user's list. Every user-scoped call takes the caller's id; entries
// owned by someone else behave as if they did not exist.
type WishlistService interface {
	ListMine(userID uint) ([]models.Wishlist, error)
	Add(userID uint, req models.AddWishlistRequest) (*models.Wishlist, error)
	Update(userID, id uint, req models.UpdateWishlistRequest) (*models.Wishlist, error)
	Remove(userID, id uint) error
	Check(userID, plotID uint) (*models.WishlistCheck, error)

	All() ([]models.Wishlist, error)
	ByPlot(plotID uint) ([]models.Wishlist, error)
	ByUser(userID uint) ([]models.Wishlist, error)
	Stats() (*models.WishlistStats, error)
}

type wishlistService struct {
	repo  repositories.WishlistRepository
	plots repositories.PlotRepository
	log   *redislog.Logger
	now   func() time.Time
}

func NewWishlistService(repo repositories.WishlistRepository, plots repositories.PlotRepository, rlog *redislog.Logger) WishlistService {
	return &wishlistService{repo: repo, plots: plots, log: rlog, now: time.Now}
}

func (s *wishlistService) ListMine(userID uint) ([]models.Wishlist, error) {
	return s.repo.ListByUser(userID)
}

func (s *wishlistService) Add(userID uint, req models.AddWishlistRequest) (*models.Wishlist, error) {
	plot, err := s.plots.FindByID(req.PlotID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound("Plot not found")
		}
		return nil, err
	}
	if _, err := s.repo.FindByUserAndPlot(userID, req.PlotID); err == nil {
		return nil, conflict("Plot already in wishlist")
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	w := &models.Wishlist{
		UserID:  userID,
		PlotID:  req.PlotID,
		Notes:   req.Notes,
		Status:  core.WishlistInterested,
		AddedAt: s.now(),
	}
	if err := s.repo.Create(w); err != nil {
		if repositories.IsDuplicate(err) { // two adds raced past the lookup
			return nil, conflict("Plot already in wishlist")
		}
		s.log.Error("wishlist add error", map[string]string{"user_id": fmt.Sprint(userID), "err": err.Error()})
		return nil, err
	}
	w.Plot = plot

	s.log.Info("wishlist add", map[string]string{"user_id": fmt.Sprint(userID), "plot_id": fmt.Sprint(req.PlotID)})
	return w, nil
}

// Update accepts any status transition; the pipeline is advisory.
func (s *wishlistService) Update(userID, id uint, req models.UpdateWishlistRequest) (*models.Wishlist, error) {
	w, err := s.repo.FindOwned(id, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound("Wishlist item not found")
		}
		return nil, err
	}
	if req.Status != nil {
		if !core.IsWishlistStatus(*req.Status) {
			return nil, invalid("Invalid wishlist status %q", *req.Status)
		}
		w.Status = *req.Status
	}
	if req.Notes != nil {
		w.Notes = *req.Notes
	}
	w.UpdatedAt = s.now()
	if err := s.repo.Update(w); err != nil {
		return nil, err
	}
	s.log.Info("wishlist update", map[string]string{"user_id": fmt.Sprint(userID), "wishlist_id": fmt.Sprint(id), "status": w.Status})
	return w, nil
}

func (s *wishlistService) Remove(userID, id uint) error {
	if err := s.repo.DeleteOwned(id, userID); err != nil {
		if repositories.IsNotFound(err) {
			return notFound("Wishlist item not found")
		}
		return err
	}
	s.log.Info("wishlist remove", map[string]string{"user_id": fmt.Sprint(userID), "wishlist_id": fmt.Sprint(id)})
	return nil
}

func (s *wishlistService) Check(userID, plotID uint) (*models.WishlistCheck, error) {
	w, err := s.repo.FindByUserAndPlot(userID, plotID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return &models.WishlistCheck{}, nil
		}
		return nil, err
	}
	id := w.ID
	return &models.WishlistCheck{InWishlist: true, WishlistID: &id}, nil
}

func (s *wishlistService) All() ([]models.Wishlist, error) { return s.repo.ListAll() }

func (s *wishlistService) ByPlot(plotID uint) ([]models.Wishlist, error) {
	return s.repo.ListByPlot(plotID)
}

func (s *wishlistService) ByUser(userID uint) ([]models.Wishlist, error) {
	return s.repo.ListByUser(userID)
}

// Stats reads the three aggregates separately, so under concurrent writes
// Total may not equal the sum of ByStatus.
func (s *wishlistService) Stats() (*models.WishlistStats, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	ranked, err := s.repo.TopPlots(topPlotsLimit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.PlotID)
	}
	plots, err := s.plots.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Plot, len(plots))
	for i := range plots {
		byID[plots[i].ID] = &plots[i]
	}

	out := &models.WishlistStats{
		Total:    total,
		ByStatus: byStatus,
		TopPlots: make([]models.TopPlot, 0, len(ranked)),
	}
	if out.ByStatus == nil {
		out.ByStatus = []models.WishlistStatusCount{}
	}
	for _, r := range ranked {
		out.TopPlots = append(out.TopPlots, models.TopPlot{PlotID: r.PlotID, Count: r.Count, Plot: byID[r.PlotID]})
	}
	return out, nil
}
