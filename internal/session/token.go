package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luxemaroc/storefront/internal/constants"
	inErrors "github.com/luxemaroc/storefront/internal/errors"
	"github.com/luxemaroc/storefront/internal/log"
)

// TTL bounds how long a guest cart outlives its last visit.
const TTL = 30 * 24 * time.Hour

type sessionId struct{}

func IDFromContext(c context.Context) string {
	id, ok := c.Value(sessionId{}).(string)
	if !ok {
		return ""
	}
	return id
}

func AttachIDToContext(c context.Context, id string) context.Context {
	return context.WithValue(c, sessionId{}, id)
}

// Mint issues a guest session token whose subject scopes the cart snapshot key.
func Mint(c context.Context, secretKey string) (token string, id string, err error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "session Mint").
		Logger()

	id = uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		Issuer:    constants.AppStorefrontService,
		Audience:  jwt.ClaimStrings{constants.AudienceGuest},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	if err != nil {
		err = fmt.Errorf("failed signing session token with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return "", "", err
	}
	logger.Info().Str(log.KeySessionID, id).Msg("minted session token")

	return token, id, nil
}

// Verify parses a guest session token and returns its session id.
func Verify(c context.Context, secretKey string, token string) (string, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "session Verify").
		Logger()

	claims := jwt.RegisteredClaims{}
	jwtToken, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
		jwt.WithAudience(constants.AudienceGuest),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppStorefrontService),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing session token with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	if !jwtToken.Valid || claims.Subject == "" {
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return "", inErrors.ErrTokenInvalid
	}

	return claims.Subject, nil
}
