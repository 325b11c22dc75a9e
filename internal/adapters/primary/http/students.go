package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/primary"
)

type studentApi struct {
	students primary.StudentService
}

func registerStudentAPI(g *echo.Group, guard *sessionGuard, students primary.StudentService) {
	a := studentApi{students: students}

	g.GET("/student/profile", a.studentProfile, guard.requireStudent())
	g.PATCH("/student/profile-picture", a.studentProfilePicture, guard.requireStudent())

	sg := g.Group("/admin/students", guard.requireUniversityAdmin())
	sg.GET("", a.studentList)
	sg.GET("/:id", a.studentGet)
	sg.PATCH("/:id/disabled", a.studentSetDisabled)
	sg.POST("/:id/certificates", a.studentIssueCertificate)
}

type profilePictureRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type disableStudentRequest struct {
	Disabled *bool `json:"disabled" validate:"required"`
}

type certificateRequest struct {
	Title      string    `json:"title" validate:"required"`
	Issuer     string    `json:"issuer"`
	IssuedDate time.Time `json:"issuedDate"`
	URL        string    `json:"url"`
}

func (a *studentApi) studentProfile(c echo.Context) error {
	identity := contextIdentity(c)
	student, err := a.students.Profile(c.Request().Context(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

func (a *studentApi) studentProfilePicture(c echo.Context) error {
	data := new(profilePictureRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	identity := contextIdentity(c)
	student, err := a.students.SetProfilePicture(c.Request().Context(), identity.SubjectID, data.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

func (a *studentApi) studentList(c echo.Context) error {
	students, err := a.students.List(c.Request().Context(), contextIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

func (a *studentApi) studentGet(c echo.Context) error {
	student, err := a.students.Get(c.Request().Context(), contextIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

func (a *studentApi) studentSetDisabled(c echo.Context) error {
	data := new(disableStudentRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	student, err := a.students.SetDisabled(c.Request().Context(), contextIdentity(c), c.Param("id"), *data.Disabled)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

func (a *studentApi) studentIssueCertificate(c echo.Context) error {
	data := new(certificateRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	student, err := a.students.IssueCertificate(c.Request().Context(), contextIdentity(c), c.Param("id"), entity.Certificate{
		Title:      data.Title,
		Issuer:     data.Issuer,
		IssuedDate: data.IssuedDate,
		URL:        data.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}
