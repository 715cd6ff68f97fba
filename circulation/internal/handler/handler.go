package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	_ "github.com/Astemirdum/library-circulation/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	circulationSvc CirculationService
	metrics        http.Handler
	log            *zap.Logger
}

// New builds the HTTP handler. metrics may be nil, then /metrics is not served.
func New(circulationSvc CirculationService, metrics http.Handler, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		metrics:        metrics,
		log:            log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.metrics != nil {
		base.GET("/metrics", echo.WrapHandler(h.metrics))
	}

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/titles", h.AddTitle)
	api.GET("/titles", h.SearchTitles)
	api.PUT("/titles/:isbn", h.UpdateTitle)
	api.POST("/titles/:isbn/copies", h.AddCopy)
	api.GET("/titles/:isbn/copies", h.TitleCopies)
	api.GET("/titles/:isbn/reservations", h.ReservationQueue)

	api.GET("/copies/:barcode", h.GetCopy)
	api.DELETE("/copies/:barcode", h.RemoveCopy)
	api.POST("/copies/:barcode/checkout", h.Checkout)
	api.POST("/copies/:barcode/return", h.ReturnCopy)
	api.POST("/copies/:barcode/withdraw", h.Withdraw)

	api.POST("/patrons", h.AddPatron)
	api.GET("/patrons", h.ListPatrons)
	api.GET("/patrons/:patronId", h.GetPatron)
	api.GET("/patrons/:patronId/reservations", h.PatronReservations)

	api.POST("/reservations", h.Reserve)
	api.DELETE("/reservations/:reservationId", h.CancelReservation)

	api.GET("/loans", h.Loans)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// AddTitle godoc
// @Summary Catalog a title
// @Tags titles
// @Accept json
// @Produce json
// @Param title body model.AddTitleRequest true "title"
// @Success 201 {object} model.Title
// @Failure 400,409,422 {object} echo.HTTPError
// @Router /api/v1/titles [post]
func (h *Handler) AddTitle(c echo.Context) error {
	var req model.AddTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	title, err := h.circulationSvc.AddTitle(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, title)
}

// UpdateTitle godoc
// @Summary Replace title metadata
// @Tags titles
// @Accept json
// @Produce json
// @Param isbn path string true "isbn"
// @Param title body model.AddTitleRequest true "title"
// @Success 200 {object} model.Title
// @Failure 400,404 {object} echo.HTTPError
// @Router /api/v1/titles/{isbn} [put]
func (h *Handler) UpdateTitle(c echo.Context) error {
	var req model.AddTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	isbn := c.Param("isbn")
	req.ISBN = isbn
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	title, err := h.circulationSvc.UpdateTitle(c.Request().Context(), isbn, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, title)
}

// SearchTitles godoc
// @Summary Search titles
// @Tags titles
// @Produce json
// @Param by query string false "isbn, name or author" default(name)
// @Param q query string false "query"
// @Success 200 {array} model.Title
// @Failure 422 {object} echo.HTTPError
// @Router /api/v1/titles [get]
func (h *Handler) SearchTitles(c echo.Context) error {
	by := model.SearchBy(c.QueryParam("by"))
	if by == "" {
		by = model.SearchByName
	}
	titles, err := h.circulationSvc.SearchTitles(c.Request().Context(), by, c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, titles)
}

// AddCopy godoc
// @Summary Add a physical copy of a title
// @Tags copies
// @Accept json
// @Produce json
// @Param isbn path string true "isbn"
// @Param copy body model.AddCopyRequest false "copy"
// @Success 201 {object} model.Copy
// @Failure 404,409 {object} echo.HTTPError
// @Router /api/v1/titles/{isbn}/copies [post]
func (h *Handler) AddCopy(c echo.Context) error {
	var req model.AddCopyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cp, err := h.circulationSvc.AddCopy(c.Request().Context(), c.Param("isbn"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cp)
}

// ReservationQueue godoc
// @Summary Pending reservations of a title in queue order
// @Tags titles
// @Produce json
// @Param isbn path string true "isbn"
// @Success 200 {array} model.Reservation
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/titles/{isbn}/reservations [get]
func (h *Handler) ReservationQueue(c echo.Context) error {
	queue, err := h.circulationSvc.ReservationQueue(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, queue)
}

func (h *Handler) TitleCopies(c echo.Context) error {
	copies, err := h.circulationSvc.TitleCopies(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) GetCopy(c echo.Context) error {
	cp, err := h.circulationSvc.GetCopy(c.Request().Context(), c.Param("barcode"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) RemoveCopy(c echo.Context) error {
	if err := h.circulationSvc.RemoveCopy(c.Request().Context(), c.Param("barcode")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Checkout godoc
// @Summary Lend a copy to a patron
// @Tags circulation
// @Accept json
// @Produce json
// @Param barcode path string true "barcode"
// @Param req body model.CheckoutRequest true "patron"
// @Success 201 {object} model.Loan
// @Failure 400,404,409,422 {object} echo.HTTPError
// @Router /api/v1/copies/{barcode}/checkout [post]
func (h *Handler) Checkout(c echo.Context) error {
	var req model.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	loan, err := h.circulationSvc.Checkout(c.Request().Context(), req.PatronID, c.Param("barcode"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// ReturnCopy godoc
// @Summary Return a borrowed copy
// @Tags circulation
// @Produce json
// @Param barcode path string true "barcode"
// @Success 200 {object} model.ReturnResponse
// @Failure 404,409 {object} echo.HTTPError
// @Router /api/v1/copies/{barcode}/return [post]
func (h *Handler) ReturnCopy(c echo.Context) error {
	barcode := c.Param("barcode")
	status, err := h.circulationSvc.ReturnCopy(c.Request().Context(), barcode)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ReturnResponse{Barcode: barcode, Status: status})
}

// Withdraw godoc
// @Summary Send an available copy to maintenance or mark it lost
// @Tags copies
// @Accept json
// @Produce json
// @Param barcode path string true "barcode"
// @Param req body model.WithdrawRequest true "target status"
// @Success 200 {object} model.Copy
// @Failure 400,404,409 {object} echo.HTTPError
// @Router /api/v1/copies/{barcode}/withdraw [post]
func (h *Handler) Withdraw(c echo.Context) error {
	var req model.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	cp, err := h.circulationSvc.Withdraw(c.Request().Context(), c.Param("barcode"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}

// AddPatron godoc
// @Summary Register a patron
// @Tags patrons
// @Accept json
// @Produce json
// @Param patron body model.AddPatronRequest true "patron"
// @Success 201 {object} model.Patron
// @Failure 400,409 {object} echo.HTTPError
// @Router /api/v1/patrons [post]
func (h *Handler) AddPatron(c echo.Context) error {
	var req model.AddPatronRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	p, err := h.circulationSvc.AddPatron(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPatrons(c echo.Context) error {
	return c.JSON(http.StatusOK, h.circulationSvc.ListPatrons(c.Request().Context()))
}

func (h *Handler) GetPatron(c echo.Context) error {
	p, err := h.circulationSvc.GetPatron(c.Request().Context(), c.Param("patronId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) PatronReservations(c echo.Context) error {
	list, err := h.circulationSvc.PatronReservations(c.Request().Context(), c.Param("patronId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// Reserve godoc
// @Summary Join the waiting line of a title
// @Tags reservations
// @Accept json
// @Produce json
// @Param req body model.ReserveRequest true "reservation"
// @Success 201 {object} model.Reservation
// @Failure 400,404 {object} echo.HTTPError
// @Router /api/v1/reservations [post]
func (h *Handler) Reserve(c echo.Context) error {
	var req model.ReserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	r, err := h.circulationSvc.Reserve(c.Request().Context(), req.PatronID, req.ISBN)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

// CancelReservation godoc
// @Summary Cancel a pending or ready reservation
// @Tags reservations
// @Produce json
// @Param reservationId path string true "reservation id"
// @Success 200 {object} model.Reservation
// @Failure 404,409 {object} echo.HTTPError
// @Router /api/v1/reservations/{reservationId} [delete]
func (h *Handler) CancelReservation(c echo.Context) error {
	r, err := h.circulationSvc.CancelReservation(c.Request().Context(), c.Param("reservationId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// Loans godoc
// @Summary Open loans, optionally only overdue ones
// @Tags circulation
// @Produce json
// @Param overdue query bool false "only overdue"
// @Success 200 {array} model.Loan
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/loans [get]
func (h *Handler) Loans(c echo.Context) error {
	ctx := c.Request().Context()
	var overdue bool
	if overdueParam := c.QueryParam("overdue"); overdueParam != "" {
		var err error
		if overdue, err = strconv.ParseBool(overdueParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("overdue is invalid"))
		}
	}
	if overdue {
		return c.JSON(http.StatusOK, h.circulationSvc.OverdueLoans(ctx, h.circulationSvc.Now()))
	}
	return c.JSON(http.StatusOK, h.circulationSvc.ActiveLoans(ctx))
}

func httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidOperation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	}
	return echo.NewHTTPError(code, err.Error())
}

func validationError(c echo.Context, err error) error {
	resp := errs.ValidationErrorResponse{Message: "validation failed"}
	resp.Errors.AdditionalProperties = err.Error()
	return c.JSON(http.StatusBadRequest, resp)
}
