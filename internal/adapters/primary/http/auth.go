package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/primary"
)

type authApi struct {
	guard *sessionGuard
	auth  primary.AuthService
}

func registerAuthAPI(g *echo.Group, guard *sessionGuard, auth primary.AuthService) {
	a := authApi{guard: guard, auth: auth}

	ag := g.Group("/auth")
	ag.POST("/login", a.universityLogin)
	ag.POST("/club-login", a.clubLogin)
	ag.POST("/logout", a.logout)

	sg := g.Group("/student")
	sg.POST("/signup", a.studentSignup)
	sg.POST("/login", a.studentLogin)
	sg.POST("/logout", a.logout)
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type studentSignupRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	EnrollmentNumber string `json:"enrollmentNumber" validate:"required"`
	Branch           string `json:"branch"`
	Password         string `json:"password" validate:"required,min=6"`
}

type studentLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *authApi) universityLogin(c echo.Context) error {
	data := new(adminLoginRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	token, admin, err := a.auth.UniversityLogin(c.Request().Context(), data.Username, data.Password)
	if err != nil {
		return err
	}

	a.guard.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, admin)
}

func (a *authApi) clubLogin(c echo.Context) error {
	data := new(adminLoginRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	token, admin, err := a.auth.ClubLogin(c.Request().Context(), data.Username, data.Password)
	if err != nil {
		return err
	}

	a.guard.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, admin)
}

func (a *authApi) studentSignup(c echo.Context) error {
	data := new(studentSignupRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	student, err := a.auth.StudentSignup(c.Request().Context(), &entity.Student{
		Name:             data.Name,
		Email:            data.Email,
		EnrollmentNumber: data.EnrollmentNumber,
		Branch:           data.Branch,
	}, data.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, student)
}

func (a *authApi) studentLogin(c echo.Context) error {
	data := new(studentLoginRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	token, student, err := a.auth.StudentLogin(c.Request().Context(), data.Email, data.Password)
	if err != nil {
		return err
	}

	a.guard.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, student)
}

// logout revokes the server-side session and clears the cookie. A request
// without a session still gets a 204 back.
func (a *authApi) logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		if err = a.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	a.guard.clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}
