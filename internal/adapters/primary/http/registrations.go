package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/primary"
)

type registrationApi struct {
	registrations primary.RegistrationService
}

func registerRegistrationAPI(g *echo.Group, guard *sessionGuard, registrations primary.RegistrationService) {
	a := registrationApi{registrations: registrations}

	g.POST("/events/:eventId/register", a.registrationCreate, guard.requireStudent())
	g.GET("/student/event-registrations", a.registrationListOwn, guard.requireStudent())

	mg := g.Group("/admin/event-registrations", guard.requireAdmin())
	mg.GET("", a.registrationListEvent)
	mg.GET("/export", a.registrationExport)
	mg.PATCH("/:id/attendance", a.attendanceMark)
}

type attendanceRequest struct {
	Attended         *bool                    `json:"attended"`
	AttendanceStatus *entity.AttendanceStatus `json:"attendanceStatus"`
}

func (a *registrationApi) registrationCreate(c echo.Context) error {
	identity := contextIdentity(c)
	registration, err := a.registrations.Register(c.Request().Context(), identity.SubjectID, c.Param("eventId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, registration)
}

func (a *registrationApi) registrationListOwn(c echo.Context) error {
	identity := contextIdentity(c)
	registrations, err := a.registrations.ListForStudent(c.Request().Context(), identity.EnrollmentNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registrations)
}

func (a *registrationApi) registrationListEvent(c echo.Context) error {
	eventID := c.QueryParam("eventId")
	if eventID == "" {
		return errs.Validationf("eventId query parameter is required")
	}

	registrations, err := a.registrations.ListForEvent(c.Request().Context(), contextIdentity(c), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registrations)
}

func (a *registrationApi) registrationExport(c echo.Context) error {
	eventID := c.QueryParam("eventId")
	if eventID == "" {
		return errs.Validationf("eventId query parameter is required")
	}

	buf, filename, err := a.registrations.ExportForEvent(c.Request().Context(), contextIdentity(c), eventID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (a *registrationApi) attendanceMark(c echo.Context) error {
	data := new(attendanceRequest)
	if err := c.Bind(data); err != nil {
		return err
	}

	registration, err := a.registrations.MarkAttendance(
		c.Request().Context(), contextIdentity(c), c.Param("id"), data.AttendanceStatus, data.Attended,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registration)
}
