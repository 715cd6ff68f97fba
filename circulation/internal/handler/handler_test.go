package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-circulation/circulation/internal/handler/mocks"
)

var checkoutAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type response struct {
	expectedCode int
	expectedBody string
}

func serve(t *testing.T, svc handler.CirculationService, method, route, target, body string, fn func(h *handler.Handler) echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.New(svc, nil, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.Add(method, route, fn(h))

	r := httptest.NewRequest(method, target, http.NoBody)
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()
	type input struct {
		barcode string
		body    string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {
				r.EXPECT().
					Checkout(gomock.Any(), "p-1", inp.barcode).
					Return(model.Loan{
						ID:         "7b0c3b8e-3f4e-4a55-9f6f-0e2b1b2d9c11",
						Barcode:    inp.barcode,
						PatronID:   "p-1",
						CheckoutAt: checkoutAt,
						DueAt:      checkoutAt.AddDate(0, 0, 30),
					}, nil)
			},
			input: input{barcode: "C1", body: `{"patronId":"p-1"}`},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"7b0c3b8e-3f4e-4a55-9f6f-0e2b1b2d9c11","barcode":"C1","patronId":"p-1","checkoutAt":"2024-05-01T09:00:00Z","dueAt":"2024-05-31T09:00:00Z"}`,
			},
		},
		{
			name:         "err. patron required",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {},
			input:        input{barcode: "C1", body: `{}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"validation failed","errors":{"additionalProperties":"Key: 'CheckoutRequest.PatronID' Error:Field validation for 'PatronID' failed on the 'required' tag"}}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {
				r.EXPECT().
					Checkout(gomock.Any(), "p-1", inp.barcode).
					Return(model.Loan{}, errors.Wrapf(errs.ErrNotFound, "copy %s", inp.barcode))
			},
			input: input{barcode: "C9", body: `{"patronId":"p-1"}`},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"copy C9: not found"}`,
			},
		},
		{
			name: "err. reference title",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {
				r.EXPECT().
					Checkout(gomock.Any(), "p-1", inp.barcode).
					Return(model.Loan{}, errors.Wrap(errs.ErrInvalidOperation, "reference title 42 cannot be checked out"))
			},
			input: input{barcode: "R1", body: `{"patronId":"p-1"}`},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"reference title 42 cannot be checked out: invalid operation"}`,
			},
		},
		{
			name: "err. borrowed",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {
				r.EXPECT().
					Checkout(gomock.Any(), "p-1", inp.barcode).
					Return(model.Loan{}, errors.Wrap(errs.ErrConflict, "copy C1 is not available: BORROWED"))
			},
			input: input{barcode: "C1", body: `{"patronId":"p-1"}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"copy C1 is not available: BORROWED: conflict"}`,
			},
		},
		{
			name: "err. consistency",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {
				r.EXPECT().
					Checkout(gomock.Any(), "p-1", inp.barcode).
					Return(model.Loan{}, errors.Wrap(errs.ErrConsistency, "copy references unknown title"))
			},
			input: input{barcode: "C1", body: `{"patronId":"p-1"}`},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"copy references unknown title: internal consistency fault"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			tt.mockBehavior(svc, tt.input)

			w := serve(t, svc, http.MethodPost, "/copies/:barcode/checkout", "/copies/"+tt.input.barcode+"/checkout", tt.input.body,
				func(h *handler.Handler) echo.HandlerFunc { return h.Checkout })

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnCopy(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCirculationService, barcode string)

	var tests = []struct {
		name         string
		barcode      string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:    "ok. held for reservation",
			barcode: "C1",
			mockBehavior: func(r *service_mocks.MockCirculationService, barcode string) {
				r.EXPECT().ReturnCopy(gomock.Any(), barcode).Return(model.StatusReserved, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"barcode":"C1","status":"RESERVED"}`,
			},
		},
		{
			name:    "ok. back on shelf",
			barcode: "C2",
			mockBehavior: func(r *service_mocks.MockCirculationService, barcode string) {
				r.EXPECT().ReturnCopy(gomock.Any(), barcode).Return(model.StatusAvailable, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"barcode":"C2","status":"AVAILABLE"}`,
			},
		},
		{
			name:    "err. not on loan",
			barcode: "C1",
			mockBehavior: func(r *service_mocks.MockCirculationService, barcode string) {
				r.EXPECT().ReturnCopy(gomock.Any(), barcode).
					Return(model.Status(""), errors.Wrap(errs.ErrConflict, "copy C1 is not on loan: AVAILABLE"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"copy C1 is not on loan: AVAILABLE: conflict"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			tt.mockBehavior(svc, tt.barcode)

			w := serve(t, svc, http.MethodPost, "/copies/:barcode/return", "/copies/"+tt.barcode+"/return", "",
				func(h *handler.Handler) echo.HandlerFunc { return h.ReturnCopy })

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Reserve(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	svc.EXPECT().Reserve(gomock.Any(), "p-2", "42").Return(model.Reservation{
		ID: "r-1", PatronID: "p-2", ISBN: "42", Status: model.ReservationPending, CreatedAt: checkoutAt,
	}, nil)
	svc.EXPECT().Reserve(gomock.Any(), "p-2", "43").Return(model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "title %s", "43"))

	route := func(h *handler.Handler) echo.HandlerFunc { return h.Reserve }

	w := serve(t, svc, http.MethodPost, "/reservations", "/reservations", `{"patronId":"p-2","isbn":"42"}`, route)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"id":"r-1","patronId":"p-2","isbn":"42","status":"PENDING","createdAt":"2024-05-01T09:00:00Z"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodPost, "/reservations", "/reservations", `{"patronId":"p-2","isbn":"43"}`, route)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"title 43: not found"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodPost, "/reservations", "/reservations", `{"patronId":"p-2"}`, route)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	gomock.InOrder(
		svc.EXPECT().CancelReservation(gomock.Any(), "r-1").Return(model.Reservation{
			ID: "r-1", PatronID: "p-2", ISBN: "42", Status: model.ReservationCanceled, CreatedAt: checkoutAt,
		}, nil),
		svc.EXPECT().CancelReservation(gomock.Any(), "r-1").
			Return(model.Reservation{}, errors.Wrap(errs.ErrConflict, "reservation r-1 is CANCELED")),
	)
	route := func(h *handler.Handler) echo.HandlerFunc { return h.CancelReservation }

	w := serve(t, svc, http.MethodDelete, "/reservations/:reservationId", "/reservations/r-1", "", route)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"CANCELED"`)

	w = serve(t, svc, http.MethodDelete, "/reservations/:reservationId", "/reservations/r-1", "", route)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Withdraw(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	svc.EXPECT().Withdraw(gomock.Any(), "C1", model.StatusLost).
		Return(model.Copy{Barcode: "C1", ISBN: "42", Status: model.StatusLost}, nil)
	route := func(h *handler.Handler) echo.HandlerFunc { return h.Withdraw }

	w := serve(t, svc, http.MethodPost, "/copies/:barcode/withdraw", "/copies/C1/withdraw", `{"status":"LOST"}`, route)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"barcode":"C1","isbn":"42","status":"LOST"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodPost, "/copies/:barcode/withdraw", "/copies/C1/withdraw", `{"status":"BORROWED"}`, route)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "oneof")
}

func TestHandler_Loans(t *testing.T) {
	t.Parallel()
	loan := model.Loan{ID: "l-1", Barcode: "C1", PatronID: "p-1", CheckoutAt: checkoutAt, DueAt: checkoutAt.AddDate(0, 0, 30)}
	now := checkoutAt.AddDate(0, 2, 0)

	type mockBehavior func(r *service_mocks.MockCirculationService)
	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. active",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ActiveLoans(gomock.Any()).Return([]model.Loan{})
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `[]`},
		},
		{
			name:  "ok. overdue",
			query: "?overdue=true",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Now().Return(now)
				r.EXPECT().OverdueLoans(gomock.Any(), now).Return([]model.Loan{loan})
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":"l-1","barcode":"C1","patronId":"p-1","checkoutAt":"2024-05-01T09:00:00Z","dueAt":"2024-05-31T09:00:00Z"}]`,
			},
		},
		{
			name:         "err. overdue invalid",
			query:        "?overdue=maybe",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"overdue is invalid"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			tt.mockBehavior(svc)

			w := serve(t, svc, http.MethodGet, "/loans", "/loans"+tt.query, "",
				func(h *handler.Handler) echo.HandlerFunc { return h.Loans })

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchTitles(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	svc.EXPECT().SearchTitles(gomock.Any(), model.SearchByName, "dune").
		Return([]model.Title{{ISBN: "42", Name: "Dune", Author: "Herbert", PublicationYear: 1965, Category: model.CategoryRegular}}, nil)
	svc.EXPECT().SearchTitles(gomock.Any(), model.SearchBy("publisher"), "x").
		Return(nil, errors.Wrapf(errs.ErrInvalidOperation, "unknown search field %q", "publisher"))
	route := func(h *handler.Handler) echo.HandlerFunc { return h.SearchTitles }

	w := serve(t, svc, http.MethodGet, "/titles", "/titles?q=dune", "", route)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Dune"`)

	w = serve(t, svc, http.MethodGet, "/titles", "/titles?by=publisher&q=x", "", route)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_AddPatron(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	req := model.AddPatronRequest{Name: "Ann", Email: "ann@example.com"}
	gomock.InOrder(
		svc.EXPECT().AddPatron(gomock.Any(), req).
			Return(model.Patron{ID: "p-1", Name: "Ann", Email: "ann@example.com", History: []model.Loan{}, Alerts: []string{}}, nil),
		svc.EXPECT().AddPatron(gomock.Any(), req).
			Return(model.Patron{}, errors.Wrapf(errs.ErrConflict, "email %s already in use", req.Email)),
	)
	route := func(h *handler.Handler) echo.HandlerFunc { return h.AddPatron }

	w := serve(t, svc, http.MethodPost, "/patrons", "/patrons", `{"name":"Ann","email":"ann@example.com"}`, route)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"id":"p-1","name":"Ann","email":"ann@example.com","history":[],"alerts":[]}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodPost, "/patrons", "/patrons", `{"name":"Ann","email":"ann@example.com"}`, route)
	require.Equal(t, http.StatusConflict, w.Code)

	w = serve(t, svc, http.MethodPost, "/patrons", "/patrons", `{"name":"Ann","email":"not-an-email"}`, route)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Catalog(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)

	dune := model.AddTitleRequest{ISBN: "42", Name: "Dune", Author: "Herbert", PublicationYear: 1965}
	svc.EXPECT().AddTitle(gomock.Any(), dune).
		Return(model.Title{ISBN: "42", Name: "Dune", Author: "Herbert", PublicationYear: 1965, Category: model.CategoryRegular}, nil)
	svc.EXPECT().UpdateTitle(gomock.Any(), "43", model.AddTitleRequest{ISBN: "43", Name: "Dune", Author: "Herbert"}).
		Return(model.Title{}, errors.Wrapf(errs.ErrNotFound, "title %s", "43"))
	svc.EXPECT().AddCopy(gomock.Any(), "42", model.AddCopyRequest{Location: "shelf 1"}).
		Return(model.Copy{Barcode: "bc-00000001", ISBN: "42", Status: model.StatusAvailable, Location: "shelf 1"}, nil)
	gomock.InOrder(
		svc.EXPECT().RemoveCopy(gomock.Any(), "C1").Return(errors.Wrapf(errs.ErrConflict, "copy %s is %s", "C1", model.StatusBorrowed)),
		svc.EXPECT().RemoveCopy(gomock.Any(), "C1").Return(nil),
	)

	const titleBody = `{"isbn":"42","name":"Dune","author":"Herbert","publicationYear":1965}`
	w := serve(t, svc, http.MethodPost, "/titles", "/titles", titleBody, func(h *handler.Handler) echo.HandlerFunc { return h.AddTitle })
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"isbn":"42","name":"Dune","author":"Herbert","publicationYear":1965,"category":"REGULAR"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodPost, "/titles", "/titles", `{"isbn":"42"}`, func(h *handler.Handler) echo.HandlerFunc { return h.AddTitle })
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, svc, http.MethodPut, "/titles/:isbn", "/titles/43", `{"name":"Dune","author":"Herbert"}`, func(h *handler.Handler) echo.HandlerFunc { return h.UpdateTitle })
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, svc, http.MethodPost, "/titles/:isbn/copies", "/titles/42/copies", `{"location":"shelf 1"}`, func(h *handler.Handler) echo.HandlerFunc { return h.AddCopy })
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"barcode":"bc-00000001","isbn":"42","status":"AVAILABLE","location":"shelf 1"}`, strings.Trim(w.Body.String(), "\n"))

	removeCopy := func(h *handler.Handler) echo.HandlerFunc { return h.RemoveCopy }
	w = serve(t, svc, http.MethodDelete, "/copies/:barcode", "/copies/C1", "", removeCopy)
	require.Equal(t, http.StatusConflict, w.Code)
	w = serve(t, svc, http.MethodDelete, "/copies/:barcode", "/copies/C1", "", removeCopy)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Patrons(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)

	ann := model.Patron{ID: "p-1", Name: "Ann", Email: "ann@example.com", History: []model.Loan{}, Alerts: []string{}}
	svc.EXPECT().ListPatrons(gomock.Any()).Return([]model.Patron{ann})
	svc.EXPECT().GetPatron(gomock.Any(), "p-1").Return(ann, nil)
	svc.EXPECT().GetPatron(gomock.Any(), "p-2").Return(model.Patron{}, errors.Wrapf(errs.ErrNotFound, "patron %s", "p-2"))
	svc.EXPECT().PatronReservations(gomock.Any(), "p-1").Return([]model.Reservation{}, nil)

	w := serve(t, svc, http.MethodGet, "/patrons", "/patrons", "", func(h *handler.Handler) echo.HandlerFunc { return h.ListPatrons })
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[{"id":"p-1","name":"Ann","email":"ann@example.com","history":[],"alerts":[]}]`, strings.Trim(w.Body.String(), "\n"))

	getPatron := func(h *handler.Handler) echo.HandlerFunc { return h.GetPatron }
	w = serve(t, svc, http.MethodGet, "/patrons/:patronId", "/patrons/p-1", "", getPatron)
	require.Equal(t, http.StatusOK, w.Code)
	w = serve(t, svc, http.MethodGet, "/patrons/:patronId", "/patrons/p-2", "", getPatron)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, svc, http.MethodGet, "/patrons/:patronId/reservations", "/patrons/p-1/reservations", "", func(h *handler.Handler) echo.HandlerFunc { return h.PatronReservations })
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_TitleCopies(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	gomock.InOrder(
		svc.EXPECT().TitleCopies(gomock.Any(), "42").
			Return([]model.Copy{{Barcode: "C1", ISBN: "42", Status: model.StatusBorrowed}}, nil),
		svc.EXPECT().TitleCopies(gomock.Any(), "43").
			Return(nil, errors.Wrapf(errs.ErrNotFound, "title %s", "43")),
	)
	route := func(h *handler.Handler) echo.HandlerFunc { return h.TitleCopies }

	w := serve(t, svc, http.MethodGet, "/titles/:isbn/copies", "/titles/42/copies", "", route)
	require.Equal(t, http.StatusOK, w.Code)
	var copies []model.Copy
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &copies))
	require.Equal(t, []model.Copy{{Barcode: "C1", ISBN: "42", Status: model.StatusBorrowed}}, copies)

	w = serve(t, svc, http.MethodGet, "/titles/:isbn/copies", "/titles/43/copies", "", route)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_NewRouter(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	svc.EXPECT().GetCopy(gomock.Any(), "C1").Return(model.Copy{Barcode: "C1", ISBN: "42", Status: model.StatusAvailable}, nil)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("circulation_checkouts_total 0\n"))
	})
	e := handler.New(svc, metrics, zap.NewNop()).NewRouter()

	for _, tc := range []struct {
		target string
		code   int
		body   string
	}{
		{target: "/manage/health", code: http.StatusOK, body: "OK"},
		{target: "/metrics", code: http.StatusOK, body: "circulation_checkouts_total 0"},
		{target: "/api/v1/copies/C1", code: http.StatusOK, body: `{"barcode":"C1","isbn":"42","status":"AVAILABLE"}`},
	} {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, http.NoBody))
		require.Equal(t, tc.code, w.Code, tc.target)
		require.Equal(t, tc.body, strings.Trim(w.Body.String(), "\n"), tc.target)
	}
}
