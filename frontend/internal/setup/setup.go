package setup

import (
	"fmt"
	"time"

	"github.com/coursehub/forumtree/frontend/internal/apiclient"
	"github.com/coursehub/forumtree/frontend/internal/handler"
	"github.com/coursehub/forumtree/frontend/internal/markdown"
	frontend_mw "github.com/coursehub/forumtree/frontend/internal/middleware"
	"github.com/coursehub/forumtree/frontend/internal/render"
	"github.com/coursehub/forumtree/frontend/web"
	"github.com/coursehub/forumtree/shared/config"
	"github.com/coursehub/forumtree/shared/jwt"
	mw "github.com/coursehub/forumtree/shared/middleware"
)

// Tokens are issued by the LMS; the frontend only verifies them.
const tokenTTL = 30 * 24 * time.Hour

type Dependencies struct {
	Handler   *handler.Handler
	Jwt       jwt.JwtService
	Auth      *frontend_mw.Auth
	APIClient *apiclient.APIClient
	Public    config.Public
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	apiClient := apiclient.New(cfg.Public.ApiBaseURL, cfg.Public.RequestTimeout)
	renderer := render.New(markdown.New(), cfg.Public.ThreadTree.IndentUnit, cfg.Public.ThreadTree.MaxDepth)
	h := handler.New(templates, cfg.Public, renderer, apiClient)

	jwtSvc := jwt.New(cfg.Private.JwtSecret, tokenTTL)
	auth := frontend_mw.NewAuth(mw.NewAuth(jwtSvc, cfg.Public.SecureCookies), cfg.Public.LoginURL)

	return &Dependencies{
		Handler:   h,
		Jwt:       jwtSvc,
		Auth:      auth,
		APIClient: apiClient,
		Public:    cfg.Public,
	}, nil
}
