package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rubentalstra/BAK/internal/identity"
	"github.com/rubentalstra/BAK/internal/security"
	"github.com/rubentalstra/BAK/internal/service"
	"github.com/rubentalstra/BAK/internal/storage"
)

// NewRouter wires all HTTP endpoints. Unmatched routes and methods return 404.
func NewRouter(
	accountSvc service.AccountService,
	reqSvc service.AssociationRequestService,
	noteSvc service.NotificationService,
	identitySvc identity.Service,
	storageSvc storage.StorageInterface,
	webhookTokens security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()

	accountHandler := NewAccountHandler(accountSvc, identitySvc)
	webhookHandler := NewWebhookHandler(reqSvc, webhookTokens)
	noteHandler := NewNotificationHandler(noteSvc, identitySvc)
	imageHandler := NewProfileImageHandler(storageSvc)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/account/delete", accountHandler.HandleDeleteAccount).Methods(http.MethodPost)
	api.HandleFunc("/webhooks/association-request", webhookHandler.HandleAssociationRequest).Methods(http.MethodPost)
	api.HandleFunc("/notifications", noteHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", noteHandler.HandleMarkAsRead).Methods(http.MethodPost)
	api.HandleFunc("/storage/profile-images/{key}", imageHandler.HandleUpload).Methods(http.MethodPut)
	api.HandleFunc("/storage/profile-images/{key}", imageHandler.HandleDownload).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = router.NotFoundHandler

	return router
}
