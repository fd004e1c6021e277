package handler

import (
	"net/http"

	"github.com/minimindteam/Dash/internal/service"
)

// Services bundles everything the routes need.
type Services struct {
	Auth      *service.AuthService
	HomePage  *service.HomePageService
	Images    *service.ImageService
	Messages  *service.MessageService
	Orders    *service.OrderService
	Team      *service.TeamService
	Reviews   *service.ReviewService
	Portfolio *service.PortfolioService
	Catalog   *service.CatalogService
	Contact   *service.ContactService
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, s Services) {
	authed := func(h http.HandlerFunc) http.Handler { return RequireAuth(s.Auth, h) }
	optional := func(h http.HandlerFunc) http.Handler { return OptionalAuth(s.Auth, h) }

	mux.HandleFunc("GET /healthz", HandleHealthz)

	auth := NewAuthHandler(s.Auth)
	mux.HandleFunc("POST /api/login", auth.HandleLogin)
	mux.HandleFunc("POST /api/refresh", auth.HandleRefresh)
	mux.Handle("GET /api/me", authed(auth.HandleMe))

	home := NewHomePageHandler(s.HomePage)
	mux.Handle("GET /api/home-page", optional(home.HandleGet))
	mux.Handle("PUT /api/home-page", authed(home.HandleSave))
	mux.Handle("DELETE /api/home-page/hero-images/{id}", authed(home.HandleDeleteHeroImage))
	mux.Handle("DELETE /api/home-page/stats/{id}", authed(home.HandleDeleteStat))
	mux.Handle("DELETE /api/home-page/services-preview/{id}", authed(home.HandleDeleteServicePreview))

	images := NewImageHandler(s.Images)
	mux.Handle("POST /api/images/upload", authed(images.HandleUpload))
	mux.Handle("GET /api/images", authed(images.HandleList))
	mux.Handle("DELETE /api/images/{key}", authed(images.HandleDelete))
	mux.HandleFunc("GET /images/{key}", images.HandleServe)

	messages := NewMessageHandler(s.Messages)
	mux.HandleFunc("POST /api/messages", messages.HandleSubmit)
	mux.Handle("GET /api/messages", authed(messages.HandleList))
	mux.Handle("PUT /api/messages/{id}/read", authed(messages.HandleMarkRead))
	mux.Handle("DELETE /api/messages/{id}", authed(messages.HandleDelete))
	mux.Handle("POST /api/messages/reply", authed(messages.HandleReply))
	mux.Handle("GET /api/messages/{id}/replies", authed(messages.HandleListReplies))

	orders := NewOrderHandler(s.Orders)
	mux.HandleFunc("POST /api/orders", orders.HandleSubmit)
	mux.Handle("GET /api/orders", authed(orders.HandleList))
	mux.Handle("PUT /api/orders/{id}", authed(orders.HandleUpdateStatus))
	mux.Handle("DELETE /api/orders/{id}", authed(orders.HandleDelete))

	team := NewTeamHandler(s.Team)
	mux.HandleFunc("GET /api/team-members", team.HandleList)
	mux.Handle("POST /api/team-members", authed(team.HandleCreate))
	mux.Handle("PUT /api/team-members/{id}", authed(team.HandleUpdate))
	mux.Handle("DELETE /api/team-members/{id}", authed(team.HandleDelete))

	reviews := NewReviewHandler(s.Reviews)
	mux.HandleFunc("GET /api/reviews", reviews.HandleListPublic)
	mux.HandleFunc("POST /api/reviews", reviews.HandleSubmit)
	mux.Handle("GET /api/admin/reviews", authed(reviews.HandleListAdmin))
	mux.Handle("PUT /api/reviews/{id}", authed(reviews.HandleUpdate))
	mux.Handle("PUT /api/reviews/{id}/approve", authed(reviews.HandleApprove))
	mux.Handle("DELETE /api/reviews/{id}", authed(reviews.HandleDelete))
	mux.HandleFunc("GET /api/reviews-stats", reviews.HandleListStats)
	mux.Handle("POST /api/reviews-stats", authed(reviews.HandleCreateStat))
	mux.Handle("PUT /api/reviews-stats/{id}", authed(reviews.HandleUpdateStat))
	mux.Handle("DELETE /api/reviews-stats/{id}", authed(reviews.HandleDeleteStat))

	portfolio := NewPortfolioHandler(s.Portfolio)
	mux.HandleFunc("GET /api/portfolio-projects", portfolio.HandleListProjects)
	mux.Handle("POST /api/portfolio-projects", authed(portfolio.HandleCreateProject))
	mux.Handle("PUT /api/portfolio-projects/{id}", authed(portfolio.HandleUpdateProject))
	mux.Handle("DELETE /api/portfolio-projects/{id}", authed(portfolio.HandleDeleteProject))
	mux.HandleFunc("GET /api/portfolio-categories", portfolio.HandleListCategories)
	mux.Handle("POST /api/portfolio-categories", authed(portfolio.HandleCreateCategory))
	mux.Handle("DELETE /api/portfolio-categories/{id}", authed(portfolio.HandleDeleteCategory))

	catalog := NewCatalogHandler(s.Catalog)
	mux.HandleFunc("GET /api/services", catalog.HandleListServices)
	mux.Handle("POST /api/services", authed(catalog.HandleCreateService))
	mux.Handle("PUT /api/services/{id}", authed(catalog.HandleUpdateService))
	mux.Handle("DELETE /api/services/{id}", authed(catalog.HandleDeleteService))
	mux.HandleFunc("GET /api/packages", catalog.HandleListPackages)
	mux.Handle("POST /api/packages", authed(catalog.HandleCreatePackage))
	mux.Handle("PUT /api/packages/{id}", authed(catalog.HandleUpdatePackage))
	mux.Handle("DELETE /api/packages/{id}", authed(catalog.HandleDeletePackage))

	contact := NewContactHandler(s.Contact)
	mux.HandleFunc("GET /api/contact-info", contact.HandleGet)
	mux.Handle("PUT /api/contact-info", authed(contact.HandleUpdate))
}
