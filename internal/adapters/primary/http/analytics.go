package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/ports/primary"
)

type analyticsApi struct {
	analytics primary.AnalyticsService
}

func registerAnalyticsAPI(g *echo.Group, guard *sessionGuard, analytics primary.AnalyticsService) {
	a := analyticsApi{analytics: analytics}

	ag := g.Group("/analytics", guard.requireAdmin())
	ag.GET("/overview", a.analyticsOverview)
	ag.GET("/events", a.analyticsEvents)
	ag.GET("/students", a.analyticsStudents)
}

func (a *analyticsApi) analyticsOverview(c echo.Context) error {
	overview, err := a.analytics.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

func (a *analyticsApi) analyticsEvents(c echo.Context) error {
	analytics, err := a.analytics.Events(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}

func (a *analyticsApi) analyticsStudents(c echo.Context) error {
	analytics, err := a.analytics.Students(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}
