package transport

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"kortyPricing/internal/modules/pricing/application/usecase"
	"kortyPricing/internal/modules/pricing/domain"
	"kortyPricing/internal/shared/httputil"
)

const dateLayout = "2006-01-02"

// HTTPHandler exposes the pricing queries and the admin surface over echo.
type HTTPHandler struct {
	query    *usecase.QueryUseCase
	validate *usecase.ValidateUseCase
	snapshot *usecase.SnapshotUseCase
	loc      *time.Location
	mapper   *httputil.ErrorMapper
	now      func() time.Time
}

func NewHTTPHandler(
	query *usecase.QueryUseCase,
	validate *usecase.ValidateUseCase,
	snapshot *usecase.SnapshotUseCase,
	loc *time.Location,
) *HTTPHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrClubNotFound, http.StatusNotFound, "club not found").
		WithMapping(domain.ErrGroupNotFound, http.StatusNotFound, "court group not found").
		WithMapping(domain.ErrInvalidRange, http.StatusBadRequest, "start must be before end").
		WithMapping(domain.ErrNotHalfHourAligned, http.StatusBadRequest, "times must be half-hour aligned").
		WithMapping(usecase.ErrNotLoaded, http.StatusServiceUnavailable, "pricing catalog not loaded")
	return &HTTPHandler{
		query:    query,
		validate: validate,
		snapshot: snapshot,
		loc:      loc,
		mapper:   mapper,
		now:      time.Now,
	}
}

// Register wires the routes. cacheMW guards the public read surface, adminMW
// guards /admin.
func (h *HTTPHandler) Register(e *echo.Echo, cacheMW, adminMW echo.MiddlewareFunc) {
	e.GET("/healthz", h.health)

	clubs := e.Group("/clubs")
	if cacheMW != nil {
		clubs.Use(cacheMW)
	}
	clubs.GET("", h.listClubs)
	clubs.GET("/:id", h.getClub)
	clubs.GET("/:id/groups/:group/price", h.quote)
	clubs.GET("/:id/groups/:group/summary", h.summary)

	admin := e.Group("/admin")
	if adminMW != nil {
		admin.Use(adminMW)
	}
	admin.GET("/validate", h.adminValidate)
	admin.POST("/reload", h.adminReload)
}

func (h *HTTPHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *HTTPHandler) listClubs(c echo.Context) error {
	date, err := h.dateParam(c)
	if err != nil {
		return err
	}
	clubs, err := h.query.ListClubs(date)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, clubs)
}

func (h *HTTPHandler) getClub(c echo.Context) error {
	date, err := h.dateParam(c)
	if err != nil {
		return err
	}
	club, err := h.query.Club(c.Param("id"), date)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, club)
}

func (h *HTTPHandler) quote(c echo.Context) error {
	group, err := groupParam(c)
	if err != nil {
		return err
	}
	start, err := timeParam(c, "start")
	if err != nil {
		return err
	}
	end, err := timeParam(c, "end")
	if err != nil {
		return err
	}
	quote, err := h.query.Quote(c.Param("id"), group, start, end)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *HTTPHandler) summary(c echo.Context) error {
	group, err := groupParam(c)
	if err != nil {
		return err
	}
	date, err := h.dateParam(c)
	if err != nil {
		return err
	}
	view, err := h.query.Summary(c.Param("id"), group, date)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *HTTPHandler) adminValidate(c echo.Context) error {
	report, err := h.validate.Execute()
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *HTTPHandler) adminReload(c echo.Context) error {
	report, err := h.snapshot.Reload(c.Request().Context())
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogRejected) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":  err.Error(),
				"report": report,
			})
		}
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *HTTPHandler) httpError(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

// dateParam reads an optional ?date=YYYY-MM-DD, defaulting to today in the
// configured location.
func (h *HTTPHandler) dateParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return h.now().In(h.loc), nil
	}
	date, err := time.ParseInLocation(dateLayout, raw, h.loc)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return date, nil
}

func groupParam(c echo.Context) (int, error) {
	group, err := strconv.Atoi(c.Param("group"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "group must be a numeric index")
	}
	return group, nil
}

func timeParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "missing "+name)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, name+" must be RFC3339")
	}
	return t, nil
}
