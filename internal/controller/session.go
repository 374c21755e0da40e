package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/luxemaroc/storefront/internal/errors"
	inHttp "github.com/luxemaroc/storefront/internal/http"
	"github.com/luxemaroc/storefront/internal/log"
	"github.com/luxemaroc/storefront/internal/otel"
	"github.com/luxemaroc/storefront/internal/session"
)

type SessionController struct {
	secretKey string
}

func AttachSessionController(router *mux.Router, secretKey string) {
	controller := SessionController{secretKey: secretKey}
	router.HandleFunc("/sessions", controller.CreateSession).Methods(http.MethodPost)
}

// CreateSession mints a guest session token. The token's subject scopes the
// cart snapshot for every later call.
func (t SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController CreateSession")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController CreateSession").
		Str(log.KeyProcess, "minting session token").
		Logger()

	logger.Info().Msg("minting session token")
	c = logger.WithContext(c)
	token, sessionID, err := session.Mint(c, t.secretKey)
	if err != nil {
		err = fmt.Errorf("failed minting session token with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Str(log.KeySessionID, sessionID).Msg("minted session token")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "session created",
		"data": map[string]interface{}{
			"session_id": sessionID,
			"token":      token,
		},
	})
}
