package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/primary"
)

type membershipApi struct {
	memberships primary.MembershipService
}

func registerMembershipAPI(g *echo.Group, guard *sessionGuard, memberships primary.MembershipService) {
	a := membershipApi{memberships: memberships}

	g.POST("/clubs/:clubId/join", a.membershipRequest, guard.requireStudent())
	g.GET("/student/club-memberships", a.membershipListOwn, guard.requireStudent())

	mg := g.Group("/admin/club-memberships")
	mg.GET("", a.membershipListClub, guard.requireClubAdmin())
	mg.PATCH("/:id", a.membershipDecide, guard.requireAdmin())
	mg.DELETE("/:id", a.membershipDestroy, guard.requireAdmin())
}

type joinClubRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type membershipDecisionRequest struct {
	Status entity.MembershipStatus `json:"status" validate:"required"`
}

func (a *membershipApi) membershipRequest(c echo.Context) error {
	data := new(joinClubRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	identity := contextIdentity(c)
	membership, err := a.memberships.Request(c.Request().Context(), identity.SubjectID, c.Param("clubId"), data.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, membership)
}

func (a *membershipApi) membershipListOwn(c echo.Context) error {
	identity := contextIdentity(c)
	memberships, err := a.memberships.ListForStudent(c.Request().Context(), identity.EnrollmentNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, memberships)
}

func (a *membershipApi) membershipListClub(c echo.Context) error {
	memberships, err := a.memberships.ListForClub(c.Request().Context(), contextIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, memberships)
}

func (a *membershipApi) membershipDecide(c echo.Context) error {
	data := new(membershipDecisionRequest)
	if err := c.Bind(data); err != nil {
		return err
	}
	if err := c.Validate(data); err != nil {
		return err
	}

	membership, err := a.memberships.Decide(c.Request().Context(), contextIdentity(c), c.Param("id"), data.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, membership)
}

func (a *membershipApi) membershipDestroy(c echo.Context) error {
	if err := a.memberships.Delete(c.Request().Context(), contextIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
