package services

import "context"

// AuthSvcFacade defines authentication operations for the admin user.
type AuthSvcFacade interface {
	// Login verifies the admin credentials and returns a signed JWT.
	Login(ctx context.Context, username, password string) (string, error)
}
