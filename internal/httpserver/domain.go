package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingRepo "shareit/internal/booking/repository/postgre"
	bookingUC "shareit/internal/booking/usecase"
	"shareit/internal/item"
	itemHTTP "shareit/internal/item/delivery/http"
	itemRepo "shareit/internal/item/repository/postgre"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	requestRepo "shareit/internal/request/repository/postgre"
	requestUC "shareit/internal/request/usecase"
	"shareit/internal/user"
	userHTTP "shareit/internal/user/delivery/http"
	userRepo "shareit/internal/user/repository/postgre"
	userUC "shareit/internal/user/usecase"
)

// setupUserDomain registers /users and returns the directory for other domains.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup) user.UseCase {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "User domain registered")
	return uc
}

// setupItemDomain registers /items. Booking summaries are read straight from
// the booking repository.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase) item.UseCase {
	repo := itemRepo.New(srv.postgresDB, srv.l)
	bookings := bookingRepo.New(srv.postgresDB, srv.l)
	uc := itemUC.New(repo, users, bookings, srv.clock.Now, srv.l)
	h := itemHTTP.New(srv.l, uc, srv.clock)
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return uc
}

func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase, items item.UseCase) {
	repo := bookingRepo.New(srv.postgresDB, srv.l)
	uc := bookingUC.New(repo, users, items, srv.clock.Now, srv.l)
	h := bookingHTTP.New(srv.l, uc, srv.clock)
	bookingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
}

func (srv HTTPServer) setupRequestDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase, items item.UseCase) {
	repo := requestRepo.New(srv.postgresDB, srv.l)
	uc := requestUC.New(repo, users, items, srv.clock.Now, srv.l)
	h := requestHTTP.New(srv.l, uc, srv.clock)
	requestHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Request domain registered")
}
