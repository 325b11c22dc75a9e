package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/primary"
)

type clubApi struct {
	clubs        primary.ClubService
	achievements primary.AchievementService
	leadership   primary.LeadershipService
	events       primary.EventService
}

func registerClubAPI(
	g *echo.Group,
	guard *sessionGuard,
	clubs primary.ClubService,
	achievements primary.AchievementService,
	leadership primary.LeadershipService,
	events primary.EventService,
) {
	a := clubApi{clubs: clubs, achievements: achievements, leadership: leadership, events: events}

	cg := g.Group("/clubs")
	cg.GET("", a.clubList)
	cg.GET("/:id", a.clubRetrieve)
	cg.GET("/:id/events", a.clubEvents)
	cg.GET("/:id/achievements", a.achievementList)
	cg.GET("/:id/leadership", a.leadershipList)

	mg := g.Group("/admin/clubs", guard.requireAdmin())
	mg.POST("", a.clubCreate)
	mg.PUT("/:id", a.clubUpdate)
	mg.DELETE("/:id", a.clubDestroy)

	ach := g.Group("/admin/achievements", guard.requireAdmin())
	ach.POST("", a.achievementCreate)
	ach.PUT("/:id", a.achievementUpdate)
	ach.DELETE("/:id", a.achievementDestroy)

	lg := g.Group("/admin/leadership", guard.requireAdmin())
	lg.POST("", a.leadershipCreate)
	lg.PUT("/:id", a.leadershipUpdate)
	lg.DELETE("/:id", a.leadershipDestroy)
}

type clubRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	LogoURL     string `json:"logoUrl"`
	CoverURL    string `json:"coverUrl"`
}

type achievementRequest struct {
	ClubID          string    `json:"clubId" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	AchievementDate time.Time `json:"achievementDate"`
	Category        string    `json:"category"`
}

type leadershipRequest struct {
	ClubID string `json:"clubId" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role" validate:"required"`
}

func (a *clubApi) clubList(c echo.Context) error {
	clubs, err := a.clubs.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clubs)
}

func (a *clubApi) clubRetrieve(c echo.Context) error {
	club, err := a.clubs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, club)
}

func (a *clubApi) clubEvents(c echo.Context) error {
	events, err := a.events.GetByClubID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (a *clubApi) clubCreate(c echo.Context) error {
	data := new(clubRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	club, err := a.clubs.Create(c.Request().Context(), contextIdentity(c), &entity.Club{
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		LogoURL:     data.LogoURL,
		CoverURL:    data.CoverURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, club)
}

func (a *clubApi) clubUpdate(c echo.Context) error {
	data := new(clubRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	club, err := a.clubs.Update(c.Request().Context(), contextIdentity(c), &entity.Club{
		ID:          c.Param("id"),
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		LogoURL:     data.LogoURL,
		CoverURL:    data.CoverURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, club)
}

func (a *clubApi) clubDestroy(c echo.Context) error {
	if err := a.clubs.Delete(c.Request().Context(), contextIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *clubApi) achievementList(c echo.Context) error {
	achievements, err := a.achievements.ListByClub(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, achievements)
}

func (a *clubApi) achievementCreate(c echo.Context) error {
	data := new(achievementRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	achievement, err := a.achievements.Create(c.Request().Context(), contextIdentity(c), &entity.Achievement{
		ClubID:          data.ClubID,
		Title:           data.Title,
		Description:     data.Description,
		ImageURL:        data.ImageURL,
		AchievementDate: data.AchievementDate,
		Category:        data.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, achievement)
}

func (a *clubApi) achievementUpdate(c echo.Context) error {
	data := new(achievementRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	achievement, err := a.achievements.Update(c.Request().Context(), contextIdentity(c), &entity.Achievement{
		ID:              c.Param("id"),
		ClubID:          data.ClubID,
		Title:           data.Title,
		Description:     data.Description,
		ImageURL:        data.ImageURL,
		AchievementDate: data.AchievementDate,
		Category:        data.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, achievement)
}

func (a *clubApi) achievementDestroy(c echo.Context) error {
	if err := a.achievements.Delete(c.Request().Context(), contextIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *clubApi) leadershipList(c echo.Context) error {
	leaders, err := a.leadership.ListByClub(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leaders)
}

func (a *clubApi) leadershipCreate(c echo.Context) error {
	data := new(leadershipRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	leader, err := a.leadership.Create(c.Request().Context(), contextIdentity(c), &entity.ClubLeadership{
		ClubID: data.ClubID,
		Name:   data.Name,
		Email:  data.Email,
		Phone:  data.Phone,
		Role:   data.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, leader)
}

func (a *clubApi) leadershipUpdate(c echo.Context) error {
	data := new(leadershipRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	leader, err := a.leadership.Update(c.Request().Context(), contextIdentity(c), &entity.ClubLeadership{
		ID:     c.Param("id"),
		ClubID: data.ClubID,
		Name:   data.Name,
		Email:  data.Email,
		Phone:  data.Phone,
		Role:   data.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leader)
}

func (a *clubApi) leadershipDestroy(c echo.Context) error {
	if err := a.leadership.Delete(c.Request().Context(), contextIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
