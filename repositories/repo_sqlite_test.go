package repositories_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Modassir22/dream-home-hub/mocks"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUserAndPlot(t *testing.T, db *gorm.DB, username, title string) (models.User, models.Plot) {
	t.Helper()
	u := models.User{Username: username, Password: "x", Role: "user"}
	require.NoError(t, db.Create(&u).Error)
	p := models.Plot{Title: title, Location: "Patna", Area: "1200 sq ft", Price: "₹24,00,000", PricePerSqFt: "₹2,000",
		Image: "a.jpg", Description: "d", Images: models.StringList(nil), Amenities: models.StringList(nil)}
	require.NoError(t, db.Create(&p).Error)
	return u, p
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	repo := repositories.NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "ahmed", Password: "h", Role: "user"}))
	err := repo.Create(&models.User{Username: "ahmed", Password: "h", Role: "user"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestPlotRepository_DefaultsApplied(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	_, p := seedUserAndPlot(t, db, "alice", "Plot A")

	got, err := repositories.NewPlotRepository(db).FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "available", got.Status)
	assert.False(t, got.IsFeatured)
	assert.JSONEq(t, `[]`, string(got.Images))
}

func TestWishlistRepository_UniquePerUserPlot(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	u, p := seedUserAndPlot(t, db, "alice", "Plot A")
	repo := repositories.NewWishlistRepository(db)

	require.NoError(t, repo.Create(&models.Wishlist{UserID: u.ID, PlotID: p.ID, Status: "interested", AddedAt: time.Now()}))
	err := repo.Create(&models.Wishlist{UserID: u.ID, PlotID: p.ID, Status: "interested", AddedAt: time.Now()})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestWishlistRepository_OwnershipScoping(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	alice, p := seedUserAndPlot(t, db, "alice", "Plot A")
	bob := models.User{Username: "bob", Password: "x", Role: "user"}
	require.NoError(t, db.Create(&bob).Error)
	repo := repositories.NewWishlistRepository(db)

	w := &models.Wishlist{UserID: alice.ID, PlotID: p.ID, Status: "interested", AddedAt: time.Now()}
	require.NoError(t, repo.Create(w))

	_, err := repo.FindOwned(w.ID, bob.ID)
	assert.True(t, repositories.IsNotFound(err))
	assert.True(t, repositories.IsNotFound(repo.DeleteOwned(w.ID, bob.ID)))

	got, err := repo.FindOwned(w.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Plot)
	assert.Equal(t, "Plot A", got.Plot.Title)

	// Update writes status and notes only, never the preloaded plot
	got.Status = "visiting"
	got.Notes = "saturday"
	got.Plot.Title = "tampered"
	require.NoError(t, repo.Update(got))

	var plot models.Plot
	require.NoError(t, db.First(&plot, p.ID).Error)
	assert.Equal(t, "Plot A", plot.Title)

	again, err := repo.FindByUserAndPlot(alice.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "visiting", again.Status)
	assert.Equal(t, "saturday", again.Notes)
}

func TestPlotRepository_DeleteCascadesWishlist(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	u, p := seedUserAndPlot(t, db, "alice", "Plot A")
	wl := repositories.NewWishlistRepository(db)
	require.NoError(t, wl.Create(&models.Wishlist{UserID: u.ID, PlotID: p.ID, Status: "interested", AddedAt: time.Now()}))

	plots := repositories.NewPlotRepository(db)
	require.NoError(t, plots.Delete(p.ID))
	assert.True(t, repositories.IsNotFound(plots.Delete(p.ID)))

	items, err := wl.ListByUser(u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSiteRepository_EnsureIsIdempotent(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	repo := repositories.NewSiteRepository(db)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.EnsureContact()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var n int64
	require.NoError(t, db.Model(&models.ContactInfo{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	c, err := repo.EnsureContact()
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, c.ID)
	assert.Equal(t, models.DefaultWorkingHours, c.WorkingHours)

	// edits survive later ensures
	c.Phone = "+91 1111111111"
	require.NoError(t, repo.SaveContact(c))
	c2, err := repo.EnsureContact()
	require.NoError(t, err)
	assert.Equal(t, "+91 1111111111", c2.Phone)
}

func TestSiteRepository_EnsureStatsDefaults(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	repo := repositories.NewSiteRepository(db)

	s, err := repo.EnsureStats()
	require.NoError(t, err)
	assert.Equal(t, 15, s.YearsExperience)
	assert.Equal(t, 500, s.HappyFamilies)
	assert.Equal(t, 50, s.ActivePlots)
}

func TestContentRepositories_Ordering(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	team := repositories.NewTeamRepository(db)
	require.NoError(t, team.Create(&models.TeamMember{Name: "B", Position: "p", Order: 2}))
	require.NoError(t, team.Create(&models.TeamMember{Name: "A", Position: "p", Order: 1}))
	require.NoError(t, team.Create(&models.TeamMember{Name: "C", Position: "p", Order: 1}))

	members, err := team.List()
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, []string{"A", "C", "B"}, []string{members[0].Name, members[1].Name, members[2].Name})

	ts := repositories.NewTestimonialRepository(db)
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ts.Create(&models.Testimonial{Name: "Old", Location: "l", Review: "r", Rating: 5, CreatedAt: old}))
	require.NoError(t, ts.Create(&models.Testimonial{Name: "New", Location: "l", Review: "r", Rating: 5, CreatedAt: old.Add(time.Hour)}))
	require.NoError(t, ts.Create(&models.Testimonial{Name: "Pinned", Location: "l", Review: "r", Rating: 5, Order: -1, CreatedAt: old}))

	list, err := ts.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Pinned", "New", "Old"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestWishlistRepository_Aggregates(t *testing.T) {
	db := mocks.NewSQLiteDB(t)
	a, p1 := seedUserAndPlot(t, db, "alice", "Plot A")
	b, p2 := seedUserAndPlot(t, db, "bob", "Plot B")
	repo := repositories.NewWishlistRepository(db)

	now := time.Now()
	require.NoError(t, repo.Create(&models.Wishlist{UserID: a.ID, PlotID: p2.ID, Status: "interested", AddedAt: now}))
	require.NoError(t, repo.Create(&models.Wishlist{UserID: b.ID, PlotID: p2.ID, Status: "purchased", AddedAt: now}))
	require.NoError(t, repo.Create(&models.Wishlist{UserID: a.ID, PlotID: p1.ID, Status: "interested", AddedAt: now}))

	byStatus, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, []models.WishlistStatusCount{{Status: "interested", Count: 2}, {Status: "purchased", Count: 1}}, byStatus)

	top, err := repo.TopPlots(5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, repositories.PlotCount{PlotID: p2.ID, Count: 2}, top[0])
	assert.Equal(t, repositories.PlotCount{PlotID: p1.ID, Count: 1}, top[1])

	top1, err := repo.TopPlots(1)
	require.NoError(t, err)
	assert.Len(t, top1, 1)
}
