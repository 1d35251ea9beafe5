package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/server"
	"github.com/lintang-b-s/roadnet/pkg/server/rest/service"
)

const maxSnapshotSize = 256 << 20

type RoadNetworkService interface {
	AddRoad(ctx context.Context, cityA, cityB string, length uint32, repairYear int32) error
	RepairRoad(ctx context.Context, cityA, cityB string, repairYear int32) error
	RemoveRoad(ctx context.Context, cityA, cityB string) error
	GetRoad(ctx context.Context, cityA, cityB string) (datastructure.Road, error)
	NewRoute(ctx context.Context, routeID uint32, cityA, cityB string) (service.RouteView, error)
	DefineRoute(ctx context.Context, routeID uint32, cities []string, lengths []uint32, years []int32) (service.RouteView, error)
	ExtendRoute(ctx context.Context, routeID uint32, city string) (service.RouteView, error)
	RemoveRoute(ctx context.Context, routeID uint32) error
	GetRoute(ctx context.Context, routeID uint32) (service.RouteView, error)
	ListRoutes(ctx context.Context) []uint32
	Snapshot(ctx context.Context) ([]byte, error)
	RestoreSnapshot(ctx context.Context, data []byte) error
}

type RoadNetworkHandler struct {
	svc      RoadNetworkService
	metrics  *Metrics
	validate *validator.Validate
	trans    ut.Translator
}

func RoadNetworkRouter(r chi.Router, svc RoadNetworkService, m *Metrics) error {
	handler, err := NewRoadNetworkHandler(svc, m)
	if err != nil {
		return err
	}

	r.Group(func(r chi.Router) {
		r.Route("/api", func(r chi.Router) {
			r.Route("/roads", func(r chi.Router) {
				r.Post("/", handler.AddRoad)
				r.Get("/", handler.GetRoad)
				r.Delete("/", handler.RemoveRoad)
				r.Put("/repair", handler.RepairRoad)
			})
			r.Route("/routes", func(r chi.Router) {
				r.Post("/", handler.NewRoute)
				r.Get("/", handler.ListRoutes)
				r.Post("/define", handler.DefineRoute)
				r.Get("/{routeID}", handler.GetRoute)
				r.Delete("/{routeID}", handler.RemoveRoute)
				r.Post("/{routeID}/extend", handler.ExtendRoute)
			})
			r.Get("/snapshot", handler.GetSnapshot)
			r.Put("/snapshot", handler.PutSnapshot)
		})
	})
	return nil
}

func NewRoadNetworkHandler(svc RoadNetworkService, m *Metrics) (*RoadNetworkHandler, error) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("english translator not found")
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	err := validate.RegisterValidation("cityname", func(fl validator.FieldLevel) bool {
		return datastructure.ValidCityName(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("register cityname validation: %w", err)
	}
	err = validate.RegisterTranslation("cityname", trans, func(ut ut.Translator) error {
		return ut.Add("cityname", "{0} must be a non empty city name without ';' or control characters", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("cityname", fe.Field())
		return t
	})
	if err != nil {
		return nil, fmt.Errorf("register cityname translation: %w", err)
	}

	return &RoadNetworkHandler{
		svc:      svc,
		metrics:  m,
		validate: validate,
		trans:    trans,
	}, nil
}

// validateRequest. render the validation error & return false if data is invalid.
func (h *RoadNetworkHandler) validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	err := h.validate.Struct(data)
	if err == nil {
		return true
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	render.Render(w, r, ErrValidation(err, translateError(validationErrs, h.trans)))
	return false
}

func (h *RoadNetworkHandler) renderServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	var resp *ErrResponse
	switch server.CodeOf(err) {
	case server.ErrBadParamInput:
		resp = errResponse(err, http.StatusBadRequest, "Invalid request.")
	case server.ErrNotFound:
		resp = errResponse(err, http.StatusNotFound, "Not found.")
	case server.ErrConflict:
		resp = errResponse(err, http.StatusConflict, "Conflict.")
	case server.ErrUnprocessable:
		resp = errResponse(err, http.StatusUnprocessableEntity, "Unprocessable request.")
	default:
		log.Printf("%s: %v", operation, err)
		resp = ErrInternalServerErrorRend(errors.New("internal server error"))
	}
	if h.metrics != nil {
		h.metrics.operationFailed(operation, resp.HTTPStatusCode)
	}
	render.Render(w, r, resp)
}

func (h *RoadNetworkHandler) routesChanged(ctx context.Context) {
	if h.metrics != nil {
		h.metrics.setActiveRoutes(len(h.svc.ListRoutes(ctx)))
	}
}

// AddRoadRequest model info
//
//	@Description	request body for adding a road between two cities. missing cities are created
type AddRoadRequest struct {
	CityA  string `json:"cityA" validate:"required,cityname"`
	CityB  string `json:"cityB" validate:"required,cityname,nefield=CityA"`
	Length uint32 `json:"length" validate:"required,gt=0"`
	Year   int32  `json:"year" validate:"required"`
}

func (s *AddRoadRequest) Bind(r *http.Request) error {
	return nil
}

// RoadResponse model info
//
//	@Description	road between two cities
type RoadResponse struct {
	CityA  string `json:"cityA"`
	CityB  string `json:"cityB"`
	Length uint32 `json:"length"`
	Year   int32  `json:"year"`
}

func RenderRoadResponse(cityA, cityB string, road datastructure.Road) *RoadResponse {
	return &RoadResponse{
		CityA:  cityA,
		CityB:  cityB,
		Length: road.Length,
		Year:   road.RepairYear,
	}
}

// AddRoad
//
//	@Summary		add a road between two cities
//	@Description	add a road between two cities. cities that do not exist yet are created
//	@Tags			roads
//	@Param			body	body	AddRoadRequest	true	"road"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/roads [post]
//	@Success		201	{object}	RoadResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoadNetworkHandler) AddRoad(w http.ResponseWriter, r *http.Request) {
	data := &AddRoadRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, *data) {
		return
	}

	if err := h.svc.AddRoad(r.Context(), data.CityA, data.CityB, data.Length, data.Year); err != nil {
		h.renderServiceError(w, r, "add_road", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &RoadResponse{CityA: data.CityA, CityB: data.CityB, Length: data.Length, Year: data.Year})
}

// RepairRoadRequest model info
//
//	@Description	request body for repairing a road. the repair year can not be older than the recorded one
type RepairRoadRequest struct {
	CityA string `json:"cityA" validate:"required,cityname"`
	CityB string `json:"cityB" validate:"required,cityname"`
	Year  int32  `json:"year" validate:"required"`
}

func (s *RepairRoadRequest) Bind(r *http.Request) error {
	return nil
}

// RepairRoad
//
//	@Summary		set the repair year of a road
//	@Tags			roads
//	@Param			body	body	RepairRoadRequest	true	"road & repair year"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/roads/repair [put]
//	@Success		200	{object}	RoadResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoadNetworkHandler) RepairRoad(w http.ResponseWriter, r *http.Request) {
	data := &RepairRoadRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, *data) {
		return
	}

	if err := h.svc.RepairRoad(r.Context(), data.CityA, data.CityB, data.Year); err != nil {
		h.renderServiceError(w, r, "repair_road", err)
		return
	}
	road, err := h.svc.GetRoad(r.Context(), data.CityA, data.CityB)
	if err != nil {
		h.renderServiceError(w, r, "repair_road", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRoadResponse(data.CityA, data.CityB, road))
}

// RoadEndpointsRequest model info
//
//	@Description	the two cities of a road
type RoadEndpointsRequest struct {
	CityA string `json:"cityA" validate:"required,cityname"`
	CityB string `json:"cityB" validate:"required,cityname"`
}

func (s *RoadEndpointsRequest) Bind(r *http.Request) error {
	return nil
}

// RemoveRoad
//
//	@Summary		remove a road
//	@Description	remove a road. every route using it is rerouted over the unique best detour, if any route can not be rerouted nothing changes
//	@Tags			roads
//	@Param			body	body	RoadEndpointsRequest	true	"road"
//	@Accept			application/json
//	@Router			/roads [delete]
//	@Success		204
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) RemoveRoad(w http.ResponseWriter, r *http.Request) {
	data := &RoadEndpointsRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, *data) {
		return
	}

	if err := h.svc.RemoveRoad(r.Context(), data.CityA, data.CityB); err != nil {
		h.renderServiceError(w, r, "remove_road", err)
		return
	}
	render.NoContent(w, r)
}

// GetRoad
//
//	@Summary		get the road between two cities
//	@Tags			roads
//	@Param			cityA	query	string	true	"first city"
//	@Param			cityB	query	string	true	"second city"
//	@Produce		application/json
//	@Router			/roads [get]
//	@Success		200	{object}	RoadResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoadNetworkHandler) GetRoad(w http.ResponseWriter, r *http.Request) {
	data := RoadEndpointsRequest{
		CityA: r.URL.Query().Get("cityA"),
		CityB: r.URL.Query().Get("cityB"),
	}
	if !h.validateRequest(w, r, data) {
		return
	}

	road, err := h.svc.GetRoad(r.Context(), data.CityA, data.CityB)
	if err != nil {
		h.renderServiceError(w, r, "get_road", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRoadResponse(data.CityA, data.CityB, road))
}

// NewRouteRequest model info
//
//	@Description	request body for a new route over the unique best path between two cities
type NewRouteRequest struct {
	RouteID uint32 `json:"routeId" validate:"required"`
	CityA   string `json:"cityA" validate:"required,cityname"`
	CityB   string `json:"cityB" validate:"required,cityname,nefield=CityA"`
}

func (s *NewRouteRequest) Bind(r *http.Request) error {
	return nil
}

// RouteResponse model info
//
//	@Description	registered route. description is "<id>;<city1>;<length>;<year>;<city2>;...;<cityN>"
type RouteResponse struct {
	RouteID     uint32   `json:"routeId"`
	Description string   `json:"description"`
	Cities      []string `json:"cities"`
}

func RenderRouteResponse(view service.RouteView) *RouteResponse {
	return &RouteResponse{
		RouteID:     view.RouteID,
		Description: view.Description,
		Cities:      view.Cities,
	}
}

// NewRoute
//
//	@Summary		register a route
//	@Description	register the unique best path between two cities as a route. shorter total length wins, on equal length the path whose oldest road was repaired most recently wins
//	@Tags			routes
//	@Param			body	body	NewRouteRequest	true	"route id & endpoints"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes [post]
//	@Success		201	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) NewRoute(w http.ResponseWriter, r *http.Request) {
	data := &NewRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, *data) {
		return
	}

	view, err := h.svc.NewRoute(r.Context(), data.RouteID, data.CityA, data.CityB)
	if err != nil {
		h.renderServiceError(w, r, "new_route", err)
		return
	}
	h.routesChanged(r.Context())

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RenderRouteResponse(view))
}

// DefineRouteRequest model info
//
//	@Description	request body for a route given city by city. lengths[i] and years[i] describe the road between cities[i] and cities[i+1]
type DefineRouteRequest struct {
	RouteID uint32   `json:"routeId" validate:"required"`
	Cities  []string `json:"cities" validate:"required,min=2,dive,cityname"`
	Lengths []uint32 `json:"lengths" validate:"required,min=1,dive,gt=0"`
	Years   []int32  `json:"years" validate:"required,min=1,dive,required"`
}

func (s *DefineRouteRequest) Bind(r *http.Request) error {
	if len(s.Lengths) != len(s.Cities)-1 || len(s.Years) != len(s.Cities)-1 {
		return errors.New("lengths and years need one entry per road")
	}
	return nil
}

// DefineRoute
//
//	@Summary		register a route given city by city
//	@Tags			routes
//	@Param			body	body	DefineRouteRequest	true	"route description"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/define [post]
//	@Success		201	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *RoadNetworkHandler) DefineRoute(w http.ResponseWriter, r *http.Request) {
	data := &DefineRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, *data) {
		return
	}

	view, err := h.svc.DefineRoute(r.Context(), data.RouteID, data.Cities, data.Lengths, data.Years)
	if err != nil {
		h.renderServiceError(w, r, "define_route", err)
		return
	}
	h.routesChanged(r.Context())

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RenderRouteResponse(view))
}

// ExtendRouteRequest model info
//
//	@Description	request body for extending a route to a city
type ExtendRouteRequest struct {
	City string `json:"city" validate:"required,cityname"`
}

func (s *ExtendRouteRequest) Bind(r *http.Request) error {
	return nil
}

// ExtendRoute
//
//	@Summary		extend a route to a city
//	@Description	extend a route at its front or its back, whichever gives the strictly better path to the city without crossing the route
//	@Tags			routes
//	@Param			routeID	path	int	true	"route id"
//	@Param			body	body	ExtendRouteRequest	true	"city"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/extend [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) ExtendRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := routeIDParam(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	data := &ExtendRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, *data) {
		return
	}

	view, err := h.svc.ExtendRoute(r.Context(), routeID, data.City)
	if err != nil {
		h.renderServiceError(w, r, "extend_route", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(view))
}

// RemoveRoute
//
//	@Summary		unregister a route. its cities and roads stay
//	@Tags			routes
//	@Param			routeID	path	int	true	"route id"
//	@Router			/routes/{routeID} [delete]
//	@Success		204
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoadNetworkHandler) RemoveRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := routeIDParam(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := h.svc.RemoveRoute(r.Context(), routeID); err != nil {
		h.renderServiceError(w, r, "remove_route", err)
		return
	}
	h.routesChanged(r.Context())
	render.NoContent(w, r)
}

// GetRoute
//
//	@Summary		get a route
//	@Tags			routes
//	@Param			routeID	path	int	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID} [get]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoadNetworkHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := routeIDParam(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	view, err := h.svc.GetRoute(r.Context(), routeID)
	if err != nil {
		h.renderServiceError(w, r, "get_route", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(view))
}

// RouteListResponse model info
//
//	@Description	registered route ids in ascending order
type RouteListResponse struct {
	RouteIDs []uint32 `json:"routeIds"`
}

// ListRoutes
//
//	@Summary		list registered route ids
//	@Tags			routes
//	@Produce		application/json
//	@Router			/routes [get]
//	@Success		200	{object}	RouteListResponse
func (h *RoadNetworkHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &RouteListResponse{RouteIDs: h.svc.ListRoutes(r.Context())})
}

// GetSnapshot
//
//	@Summary		download the whole road network as a zstd compressed binary snapshot
//	@Tags			snapshot
//	@Produce		application/octet-stream
//	@Router			/snapshot [get]
//	@Success		200	{file}	binary
//	@Failure		500	{object}	ErrResponse
func (h *RoadNetworkHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Snapshot(r.Context())
	if err != nil {
		h.renderServiceError(w, r, "get_snapshot", err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("write snapshot: %v", err)
	}
}

// PutSnapshot
//
//	@Summary		replace the road network with a snapshot
//	@Tags			snapshot
//	@Accept			application/octet-stream
//	@Router			/snapshot [put]
//	@Success		204
//	@Failure		400	{object}	ErrResponse
func (h *RoadNetworkHandler) PutSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSnapshotSize))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := h.svc.RestoreSnapshot(r.Context(), data); err != nil {
		h.renderServiceError(w, r, "put_snapshot", err)
		return
	}
	h.routesChanged(r.Context())
	render.NoContent(w, r)
}

func routeIDParam(r *http.Request) (uint32, error) {
	raw := chi.URLParam(r, "routeID")
	routeID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid route id %q", raw)
	}
	return uint32(routeID), nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return errResponse(err, http.StatusBadRequest, "Invalid request.")
}

// ErrResponse model info
//
//	@Description	model for error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errResponse(err error, status int, statusText string) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     statusText,
		AppCode:        int64(server.CodeOf(err)),
		ErrorText:      err.Error(),
	}
}

func translateError(validatorErrs validator.ValidationErrors, trans ut.Translator) (errs []error) {
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInternalServerErrorRend(err error) *ErrResponse {
	return errResponse(err, http.StatusInternalServerError, "Internal server error.")
}
