package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/ports/primary"
)

type pointsApi struct {
	points primary.PointsService
}

func registerPointsAPI(g *echo.Group, guard *sessionGuard, points primary.PointsService) {
	a := pointsApi{points: points}

	mg := g.Group("/admin/student-points", guard.requireClubAdmin())
	mg.POST("", a.pointsAward)
	mg.POST("/award-attendance", a.pointsAwardAttendance)

	g.GET("/student/points", a.pointsSummary, guard.requireStudent())
}

type awardPointsRequest struct {
	StudentID string   `json:"studentId" validate:"required"`
	Points    int      `json:"points" validate:"required,gt=0"`
	Badges    []string `json:"badges"`
	Skills    []string `json:"skills"`
	Reason    string   `json:"reason"`
}

type awardAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

func (a *pointsApi) pointsAward(c echo.Context) error {
	data := new(awardPointsRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	row, err := a.points.Award(
		c.Request().Context(), contextIdentity(c),
		data.StudentID, data.Points, data.Badges, data.Skills, data.Reason,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

func (a *pointsApi) pointsAwardAttendance(c echo.Context) error {
	data := new(awardAttendanceRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	row, err := a.points.AwardAttendance(c.Request().Context(), contextIdentity(c), data.StudentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

func (a *pointsApi) pointsSummary(c echo.Context) error {
	identity := contextIdentity(c)
	summary, err := a.points.Summary(c.Request().Context(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
