package handlers

import (
	userRepo "foodbridge/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the HTTP handlers and the dependencies route
// registration needs for middleware construction.
type HandlerBundle struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ListingHandler      *ListingHandler
	RequestHandler      *RequestHandler
	NotificationHandler *NotificationHandler
	MatchingHandler     *MatchingHandler
	CityHandler         *CityHandler
	AdminHandler        *AdminHandler

	// UserRepo and AuthCache back the JWT middleware.
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client
}
