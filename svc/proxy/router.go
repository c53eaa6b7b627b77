package proxy

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Router mounts both functions under one subtree, typically at /functions.
// CORS is permissive: these endpoints are called straight from the browser
// and carry no cookies, so the preflight only needs to open methods and
// headers.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/whatsapp-test", svc.HandleWhatsAppTest)
	r.Post("/assistant", svc.HandleAssistant)

	return r
}
