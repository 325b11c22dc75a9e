package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/primary"
)

type eventApi struct {
	events primary.EventService
}

func registerEventAPI(g *echo.Group, guard *sessionGuard, events primary.EventService) {
	a := eventApi{events: events}

	eg := g.Group("/events")
	eg.GET("", a.eventList)
	eg.GET("/:id", a.eventRetrieve)
	eg.GET("/:id/calendar", a.eventCalendar)
	eg.GET("/:id/qr", a.eventQR, guard.requireAdmin())

	mg := g.Group("/admin/events", guard.requireAdmin())
	mg.POST("", a.eventCreate)
	mg.PUT("/:id", a.eventUpdate)
	mg.DELETE("/:id", a.eventDestroy)
}

type eventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	ClubID      string    `json:"clubId" validate:"required"`
	ImageURL    string    `json:"imageUrl"`
}

func (a *eventApi) eventList(c echo.Context) error {
	events, err := a.events.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (a *eventApi) eventRetrieve(c echo.Context) error {
	event, err := a.events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (a *eventApi) eventCalendar(c echo.Context) error {
	document, err := a.events.Calendar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "event.ics"))
	return c.Blob(http.StatusOK, "text/calendar", []byte(document))
}

func (a *eventApi) eventQR(c echo.Context) error {
	png, err := a.events.CheckInQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (a *eventApi) eventCreate(c echo.Context) error {
	data := new(eventRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	event, err := a.events.Create(c.Request().Context(), contextIdentity(c), a.toEntity(data, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

func (a *eventApi) eventUpdate(c echo.Context) error {
	data := new(eventRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	event, err := a.events.Update(c.Request().Context(), contextIdentity(c), a.toEntity(data, c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (a *eventApi) eventDestroy(c echo.Context) error {
	if err := a.events.Delete(c.Request().Context(), contextIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *eventApi) toEntity(data *eventRequest, id string) *entity.Event {
	return &entity.Event{
		ID:          id,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		Location:    data.Location,
		Category:    data.Category,
		ClubID:      data.ClubID,
		ImageURL:    data.ImageURL,
	}
}
