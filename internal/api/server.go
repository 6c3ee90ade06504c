package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/hcalendar/internal/session"
	"github.com/nikmy/hcalendar/pkg/calendar"
	"github.com/nikmy/hcalendar/pkg/errors"
	"github.com/nikmy/hcalendar/pkg/logger"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type ModelFactory func(opts ...calendar.Option) (*calendar.Model, error)

func NewServer(cfg Config, log logger.Logger, newModel ModelFactory) Server {
	return newServer(cfg, log, newModel)
}

func newServer(cfg Config, log logger.Logger, newModel ModelFactory) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		Immutable:               true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(errorResponse(fe.Message))
		}
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		http:     fiber.New(fiberCfg),
		addr:     cfg.HTTP.Addr,
		newModel: newModel,
		log:      serveLog,
	}
	s.listen = func() error { return s.http.Listen(s.addr) }
	s.sessions = session.NewStore(cfg.Sessions, func(string) (*calendar.Model, error) {
		return newModel()
	}, serveLog)

	s.setupRoutes()

	return s
}

type server struct {
	http     *fiber.App
	addr     string
	newModel ModelFactory
	sessions *session.Store[*calendar.Model]
	log      logger.Logger

	listen    func() error
	listeners sync.WaitGroup
}

func (s *server) Serve(ctx context.Context) error {
	go func() {
		if err := s.sessions.Run(ctx); err != nil {
			s.log.Error(errors.WrapFail(err, "run sessions sweeper"))
		}
	}()

	// buffered: Listen returns after Serve when ctx is done first
	errCh := make(chan error, 1)
	s.listeners.Add(1)
	go func() {
		defer s.listeners.Done()
		errCh <- s.listen()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		return errors.WrapFail(err, "shutdown http server")
	}
	return nil
}

func (s *server) setupRoutes() {
	s.http.Get("/labels", s.handleLabels)

	cal := s.http.Group("/calendar/:sid")
	cal.Get("", s.handleGet)
	cal.Delete("", s.handleDrop)
	cal.Put("/month", s.handleMonth)
	cal.Put("/year", s.handleYear)
	cal.Put("/bounds", s.handleBounds)
	cal.Post("/select", s.handleSelect)
	cal.Put("/selected", s.handleSelected)
}

func (s *server) handleLabels(c *fiber.Ctx) error {
	m, err := s.newModel()
	if err != nil {
		return errors.WrapFail(err, "create calendar model")
	}

	return c.Status(http.StatusOK).JSON(labelsResponse{
		Months: m.MonthLabels(),
		Years:  m.YearLabels(),
	})
}

func (s *server) handleGet(c *fiber.Ctx) error {
	return s.respond(c, func(m *calendar.Model) (calendarResponse, error) {
		return newCalendarResponse(m), nil
	})
}

func (s *server) handleDrop(c *fiber.Ctx) error {
	if !s.sessions.Drop(c.Params("sid")) {
		return s.sendError(c, http.StatusNotFound, "no such calendar")
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

func (s *server) handleMonth(c *fiber.Ctx) error {
	var req monthRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}
	if (req.Month == nil) == (req.Label == nil) {
		return fiber.NewError(http.StatusBadRequest, "exactly one of \"month\" and \"label\" is required")
	}

	return s.respond(c, func(m *calendar.Model) (calendarResponse, error) {
		var (
			res calendar.MonthResult
			err error
		)
		if req.Label != nil {
			res, err = m.SelectMonthLabel(*req.Label)
		} else {
			res, err = m.SetMonth(time.Month(*req.Month))
		}
		if err != nil {
			return calendarResponse{}, err
		}
		return newCalendarResponse(m).withScroll(res.Scroll), nil
	})
}

func (s *server) handleYear(c *fiber.Ctx) error {
	var req yearRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}
	if (req.Year == nil) == (req.Label == nil) {
		return fiber.NewError(http.StatusBadRequest, "exactly one of \"year\" and \"label\" is required")
	}

	return s.respond(c, func(m *calendar.Model) (calendarResponse, error) {
		var (
			res calendar.MonthResult
			err error
		)
		if req.Label != nil {
			res, err = m.SelectYearLabel(*req.Label)
		} else {
			res, err = m.SetYear(*req.Year)
		}
		if err != nil {
			return calendarResponse{}, err
		}
		return newCalendarResponse(m).withScroll(res.Scroll), nil
	})
}

func (s *server) handleBounds(c *fiber.Ctx) error {
	var req boundsRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	minimum, err := parseDate(req.MinimumDate, "minimumDate")
	if err != nil {
		return err
	}
	maximum, err := parseDate(req.MaximumDate, "maximumDate")
	if err != nil {
		return err
	}

	return s.respond(c, func(m *calendar.Model) (calendarResponse, error) {
		var res calendar.MonthResult
		if !minimum.IsZero() {
			res = m.SetMinimumDate(minimum)
		}
		if !maximum.IsZero() {
			res = m.SetMaximumDate(maximum)
		}

		resp := newCalendarResponse(m)
		if !minimum.IsZero() || !maximum.IsZero() {
			resp = resp.withScroll(res.Scroll)
		}
		return resp, nil
	})
}

func (s *server) handleSelect(c *fiber.Ctx) error {
	var req selectRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	return s.respond(c, func(m *calendar.Model) (calendarResponse, error) {
		res := m.SelectDay(req.Day)
		return newCalendarResponse(m).withSelection(res), nil
	})
}

func (s *server) handleSelected(c *fiber.Ctx) error {
	var req selectedRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	date, err := parseDate(req.Date, "date")
	if err != nil {
		return err
	}
	if date.IsZero() {
		return fiber.NewError(http.StatusBadRequest, "\"date\" is required")
	}

	return s.respond(c, func(m *calendar.Model) (calendarResponse, error) {
		res := m.SetSelectedDate(date)
		return newCalendarResponse(m).withSelection(res), nil
	})
}

// respond runs fn on the calendar of the request and writes its result.
// Invalid arguments are reported as 400, other errors go to the error handler.
func (s *server) respond(c *fiber.Ctx, fn func(m *calendar.Model) (calendarResponse, error)) error {
	var resp calendarResponse
	err := s.sessions.Do(c.Params("sid"), func(m *calendar.Model) (err error) {
		resp, err = fn(m)
		return err
	})

	if errors.Is(err, calendar.ErrInvalidArgument) {
		s.log.Debug(err)
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return errors.WrapFail(err, "update calendar")
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func (s *server) parseBody(c *fiber.Ctx, to any) error {
	err := c.BodyParser(to)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse request body"))
		return fiber.NewError(http.StatusBadRequest, "bad json")
	}
	return nil
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"status": "ERROR", "message": msg}
}

// parseDate returns a zero time for an empty value.
func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fiber.NewError(http.StatusBadRequest, "malformed \""+field+"\", want YYYY-MM-DD")
	}
	return d, nil
}
