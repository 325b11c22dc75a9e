package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/ports/primary"
	"github.com/campushub/clubhub/pkg/logger"
)

const notifyTimeout = 30 * time.Second

type announcementApi struct {
	announcements primary.AnnouncementService
	notify        primary.NotifyService
}

func registerAnnouncementAPI(g *echo.Group, guard *sessionGuard, announcements primary.AnnouncementService, notify primary.NotifyService) {
	a := announcementApi{announcements: announcements, notify: notify}

	ag := g.Group("/announcements")
	ag.GET("", a.announcementList)
	ag.POST("", a.announcementCreate, guard.requireAdmin())
	ag.PATCH("/:id", a.announcementUpdate, guard.requireAdmin())
	ag.DELETE("/:id", a.announcementDestroy, guard.requireAdmin())

	sg := g.Group("/student/announcements", guard.requireStudent())
	sg.GET("", a.announcementListStudent)
	sg.POST("/:id/read", a.announcementMarkRead)
}

type announcementCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Target  string `json:"target"`
}

type announcementUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

func (a *announcementApi) announcementList(c echo.Context) error {
	announcements, err := a.announcements.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

func (a *announcementApi) announcementCreate(c echo.Context) error {
	data := new(announcementCreateRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	announcement, err := a.announcements.Create(c.Request().Context(), contextIdentity(c), data.Title, data.Content, data.Target)
	if err != nil {
		return err
	}

	// Email fanout is best effort and never delays the response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if notifyErr := a.notify.NotifyAnnouncement(ctx, announcement.ID); notifyErr != nil {
			logger.Log.Errorf("announcement %s email fanout: %v", announcement.ID, notifyErr)
		}
	}()

	return c.JSON(http.StatusCreated, announcement)
}

func (a *announcementApi) announcementUpdate(c echo.Context) error {
	data := new(announcementUpdateRequest)
	if err := c.Bind(data); err != nil {
		return err
	}

	announcement, err := a.announcements.Update(
		c.Request().Context(), contextIdentity(c), c.Param("id"), data.Title, data.Content, data.Pinned,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}

func (a *announcementApi) announcementDestroy(c echo.Context) error {
	if err := a.announcements.Delete(c.Request().Context(), contextIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *announcementApi) announcementListStudent(c echo.Context) error {
	identity := contextIdentity(c)
	views, err := a.announcements.ListForStudent(c.Request().Context(), identity.EnrollmentNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (a *announcementApi) announcementMarkRead(c echo.Context) error {
	identity := contextIdentity(c)
	if err := a.announcements.MarkRead(c.Request().Context(), identity.EnrollmentNumber, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"isRead": true})
}
