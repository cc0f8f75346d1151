package http

import (
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/delivery/http/handler"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	testHandler        *handler.TestHandler
	reservationHandler *handler.ReservationHandler
	reportHandler      *handler.ReportHandler
	bannerHandler      *handler.BannerHandler
	contentHandler     *handler.ContentHandler
	paymentHandler     *handler.PaymentHandler
	statsHandler       *handler.StatsHandler
	authMiddleware     *middleware.AuthMiddleware
	adminMiddleware    *middleware.AdminMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	testHandler *handler.TestHandler,
	reservationHandler *handler.ReservationHandler,
	reportHandler *handler.ReportHandler,
	bannerHandler *handler.BannerHandler,
	contentHandler *handler.ContentHandler,
	paymentHandler *handler.PaymentHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		testHandler:        testHandler,
		reservationHandler: reservationHandler,
		reportHandler:      reportHandler,
		bannerHandler:      bannerHandler,
		contentHandler:     contentHandler,
		paymentHandler:     paymentHandler,
		statsHandler:       statsHandler,
		authMiddleware:     authMiddleware,
		adminMiddleware:    adminMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// Setup registers the route table. Paths are kept flat to stay compatible
// with the existing client. The CORS layer wraps the router from the
// outside so preflight requests are answered even though no route
// registers OPTIONS.
func (r *Router) Setup() http.Handler {
	// Public routes
	public := r.router.PathPrefix("/").Subrouter()

	public.HandleFunc("/", r.healthCheck).Methods(http.MethodGet)
	public.HandleFunc("/jwt", r.authHandler.IssueToken).Methods(http.MethodPost)

	public.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	public.HandleFunc("/userlist/blocked/{email}", r.userHandler.GetBlockedStatus).Methods(http.MethodGet)
	public.HandleFunc("/allUsers/{id}", r.userHandler.GetUserByID).Methods(http.MethodGet)
	public.HandleFunc("/users/{id}", r.userHandler.UpsertUser).Methods(http.MethodPut)

	public.HandleFunc("/tests", r.testHandler.GetTests).Methods(http.MethodGet)
	public.HandleFunc("/filter-tests", r.testHandler.FilterTests).Methods(http.MethodGet)
	public.HandleFunc("/tests/{id}", r.testHandler.GetTest).Methods(http.MethodGet)
	public.HandleFunc("/booked-test/{id}", r.testHandler.UpdateSlots).Methods(http.MethodPatch)
	public.HandleFunc("/tests/{id}", r.testHandler.DeleteTest).Methods(http.MethodDelete)
	public.HandleFunc("/test-count", r.testHandler.CountTests).Methods(http.MethodGet)

	public.HandleFunc("/districts", r.contentHandler.GetDistricts).Methods(http.MethodGet)
	public.HandleFunc("/upazilas", r.contentHandler.GetUpazilas).Methods(http.MethodGet)
	public.HandleFunc("/doctors", r.contentHandler.GetDoctors).Methods(http.MethodGet)
	public.HandleFunc("/recommend", r.contentHandler.GetRecommendations).Methods(http.MethodGet)
	public.HandleFunc("/blogs", r.contentHandler.GetBlogs).Methods(http.MethodGet)
	public.HandleFunc("/blogs/{id}", r.contentHandler.GetBlog).Methods(http.MethodGet)

	public.HandleFunc("/reserve", r.reservationHandler.CreateReservation).Methods(http.MethodPost)
	public.HandleFunc("/search-reserve", r.reservationHandler.SearchReservations).Methods(http.MethodGet)
	public.HandleFunc("/reserve/{id}", r.reservationHandler.DeleteReservation).Methods(http.MethodDelete)

	public.HandleFunc("/report", r.reportHandler.CreateReport).Methods(http.MethodPost)
	public.HandleFunc("/deliver-test/{id}", r.reservationHandler.DeliverReport).Methods(http.MethodPatch)

	public.HandleFunc("/banner", r.bannerHandler.GetActiveBanner).Methods(http.MethodGet)

	public.HandleFunc("/create-payment-intent", r.paymentHandler.CreatePaymentIntent).Methods(http.MethodPost)

	public.HandleFunc("/top-tests", r.statsHandler.GetTopTests).Methods(http.MethodGet)

	// Protected routes (valid bearer token)
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/users/admin/{email}", r.userHandler.GetAdminStatus).Methods(http.MethodGet)
	protected.HandleFunc("/users/{email}", r.userHandler.GetUserByEmail).Methods(http.MethodGet)

	protected.HandleFunc("/reserve/{email}", r.reservationHandler.GetPendingReservations).Methods(http.MethodGet)
	protected.HandleFunc("/download-reserve/{email}", r.reservationHandler.GetAllReservations).Methods(http.MethodGet)
	protected.HandleFunc("/cancel-reserve/{test_id}", r.reservationHandler.CancelReservation).Methods(http.MethodPatch)

	protected.HandleFunc("/report/{email}", r.reportHandler.GetReportsForPatient).Methods(http.MethodGet)

	protected.HandleFunc("/banners/{coupon}", r.bannerHandler.GetActiveBannerByCoupon).Methods(http.MethodGet)
	protected.HandleFunc("/banners/{id}", r.bannerHandler.ActivateBanner).Methods(http.MethodPatch)
	protected.HandleFunc("/banners/{id}", r.bannerHandler.DeleteBanner).Methods(http.MethodDelete)

	// Admin routes (valid token + admin role on the user record)
	admin := r.router.PathPrefix("/").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.adminMiddleware.RequireAdmin)

	admin.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.PromoteUser).Methods(http.MethodPatch)
	admin.HandleFunc("/block-user/{id}", r.userHandler.BlockUser).Methods(http.MethodPatch)

	admin.HandleFunc("/tests", r.testHandler.CreateTest).Methods(http.MethodPost)
	admin.HandleFunc("/tests/{id}", r.testHandler.UpdateTest).Methods(http.MethodPatch)

	admin.HandleFunc("/all-reserve/{id}", r.reservationHandler.GetReservationsByTest).Methods(http.MethodGet)
	admin.HandleFunc("/reserve-report/{id}", r.reservationHandler.GetReservation).Methods(http.MethodGet)

	admin.HandleFunc("/banners", r.bannerHandler.GetAllBanners).Methods(http.MethodGet)
	admin.HandleFunc("/banners", r.bannerHandler.CreateBanner).Methods(http.MethodPost)

	admin.HandleFunc("/totbooking", r.statsHandler.GetBookingTotals).Methods(http.MethodGet)
	admin.HandleFunc("/delivery-ratio", r.statsHandler.GetDeliveryRatio).Methods(http.MethodGet)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Diagnostic Server Running"))
}
