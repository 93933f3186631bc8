package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/rental-shop/application/availability"
	"github.com/muhammadheryan/rental-shop/application/product"
	"github.com/muhammadheryan/rental-shop/application/rental"
	"github.com/muhammadheryan/rental-shop/application/session"
	"github.com/muhammadheryan/rental-shop/application/subscription"
	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	utilsContext "github.com/muhammadheryan/rental-shop/utils/context"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	validatorx "github.com/muhammadheryan/rental-shop/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

type RestHandler struct {
	ProductApp      product.ProductApp
	AvailabilityApp availability.AvailabilityApp
	RentalApp       rental.RentalApp
	SubscriptionApp subscription.SubscriptionApp
}

type Options struct {
	SessionApp     session.SessionApp
	InternalAPIKey string
	Limiter        *rate.Limiter
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// protected routes
	api := mux.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}/availability", rh.CheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/orders", rh.CreateRentalOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/pickup", rh.PickupOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/return", rh.ReturnOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/complete", rh.CompleteOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	api.HandleFunc("/subscriptions/{id:[0-9]+}/proration", rh.PreviewPlanChange).Methods(http.MethodGet)
	api.HandleFunc("/subscriptions/{id:[0-9]+}/change-plan", rh.ChangePlan).Methods(http.MethodPost)

	// internal routes, called by the pickup expiration consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/orders/{id:[0-9]+}/expire", rh.ExpireReservation).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(RateLimitMiddleware(opts.Limiter))
	mux.Use(AuthMiddleware(opts.SessionApp))

	return mux
}

func isInternalPath(path string) bool {
	return strings.HasPrefix(path, "/internal/")
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

func tenantScope(r *http.Request) (model.TenantScope, error) {
	scope, ok := utilsContext.GetTenantScope(r.Context())
	if !ok {
		return model.TenantScope{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return scope, nil
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// GetProduct handler
// @Summary Product detail
// @Description Product with its stock per outlet
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetailResponse
// @Failure 404 {object} Response
// @Router /api/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	scope, err := tenantScope(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), scope, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CheckAvailability handler
// @Summary Product availability
// @Description Whether a quantity of a product can be rented at an outlet, optionally for a period
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param outlet_id query int false "Outlet ID, defaults to the session outlet"
// @Param quantity query int false "Requested quantity" default(1)
// @Param date query string false "Whole UTC day, YYYY-MM-DD"
// @Param start query string false "Window start, RFC3339 or YYYY-MM-DD"
// @Param end query string false "Window end, RFC3339 or YYYY-MM-DD"
// @Param timezone query string false "IANA zone used for display" default(UTC)
// @Param precision query string false "minute, second or millisecond" default(second)
// @Success 200 {object} model.AvailabilityResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id}/availability [get]
func (s *RestHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	scope, err := tenantScope(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	params := model.AvailabilityParams{
		OutletID:  q.Get("outlet_id"),
		Quantity:  q.Get("quantity"),
		Date:      q.Get("date"),
		Start:     q.Get("start"),
		End:       q.Get("end"),
		Timezone:  q.Get("timezone"),
		Precision: q.Get("precision"),
	}

	res, err := s.AvailabilityApp.CheckAvailability(r.Context(), scope, id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateRentalOrder handler
// @Summary Create rental order
// @Description Reserve products at an outlet for a pickup/return window
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRentalOrderRequest true "Rental order"
// @Success 200 {object} model.RentalOrderResponse
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/orders [post]
func (s *RestHandler) CreateRentalOrder(w http.ResponseWriter, r *http.Request) {
	scope, err := tenantScope(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateRentalOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		if req.ReturnAt.Before(req.PickupAt) {
			writeError(w, errors.SetCustomError(constant.ErrInvalidDateRange))
			return
		}
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RentalApp.CreateRentalOrder(r.Context(), scope, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type orderTransition func(r *http.Request, scope model.TenantScope, orderID uint64) error

func (s *RestHandler) handleTransition(w http.ResponseWriter, r *http.Request, status constant.OrderStatus, fn orderTransition) {
	scope, err := tenantScope(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := fn(r, scope, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.OrderStatusResponse{OrderID: id, Status: status})
}

// PickupOrder handler
// @Summary Pick up a reserved order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderStatusResponse
// @Failure 400 {object} Response
// @Router /api/orders/{id}/pickup [post]
func (s *RestHandler) PickupOrder(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, constant.OrderStatusPickuped, func(r *http.Request, scope model.TenantScope, id uint64) error {
		return s.RentalApp.PickupOrder(r.Context(), scope, id)
	})
}

// ReturnOrder handler
// @Summary Return a picked up order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderStatusResponse
// @Failure 400 {object} Response
// @Router /api/orders/{id}/return [post]
func (s *RestHandler) ReturnOrder(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, constant.OrderStatusReturned, func(r *http.Request, scope model.TenantScope, id uint64) error {
		return s.RentalApp.ReturnOrder(r.Context(), scope, id)
	})
}

// CompleteOrder handler
// @Summary Complete a returned order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderStatusResponse
// @Failure 400 {object} Response
// @Router /api/orders/{id}/complete [post]
func (s *RestHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, constant.OrderStatusCompleted, func(r *http.Request, scope model.TenantScope, id uint64) error {
		return s.RentalApp.CompleteOrder(r.Context(), scope, id)
	})
}

// CancelOrder handler
// @Summary Cancel a reserved order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderStatusResponse
// @Failure 400 {object} Response
// @Router /api/orders/{id}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, constant.OrderStatusCancelled, func(r *http.Request, scope model.TenantScope, id uint64) error {
		return s.RentalApp.CancelOrder(r.Context(), scope, id)
	})
}

func (s *RestHandler) ExpireReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.RentalApp.ExpireReservation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// PreviewPlanChange handler
// @Summary Preview plan change proration
// @Tags Subscription
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subscription ID"
// @Param plan_id query int true "Target plan ID"
// @Param effective_date query string false "RFC3339, defaults to now"
// @Success 200 {object} model.ChangePlanResponse
// @Failure 400 {object} Response
// @Router /api/subscriptions/{id}/proration [get]
func (s *RestHandler) PreviewPlanChange(w http.ResponseWriter, r *http.Request) {
	scope, err := tenantScope(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	planID, err := strconv.ParseUint(q.Get("plan_id"), 10, 64)
	if err != nil || planID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req := &model.ChangePlanRequest{PlanID: planID}
	if v := q.Get("effective_date"); v != "" {
		effective, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		req.EffectiveDate = &effective
	}

	res, err := s.SubscriptionApp.PreviewPlanChange(r.Context(), scope, id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ChangePlan handler
// @Summary Change subscription plan
// @Description Switches plan mid-cycle, charging the prorated difference on upgrades
// @Tags Subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subscription ID"
// @Param request body model.ChangePlanRequest true "Plan change"
// @Success 200 {object} model.ChangePlanResponse
// @Failure 400 {object} Response
// @Router /api/subscriptions/{id}/change-plan [post]
func (s *RestHandler) ChangePlan(w http.ResponseWriter, r *http.Request) {
	scope, err := tenantScope(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SubscriptionApp.ChangePlan(r.Context(), scope, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
