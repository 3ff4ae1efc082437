package service

import (
	"brainvault/config"
	"brainvault/pkg/errs"
	"brainvault/pkg/log"
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
)

// GoogleIdentity ID token 中用到的字段
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*GoogleIdentity, error)
}

// IDTokenVerifier 使用 Google 公钥校验 ID token，audience 为配置的 client id
type IDTokenVerifier struct {
	ClientID string
}

func NewGoogleVerifier(conf *config.Config) GoogleVerifier {
	return &IDTokenVerifier{ClientID: conf.Google.ClientID}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (*GoogleIdentity, error) {
	if v.ClientID == "" {
		return nil, errs.Internal(errors.New("google client id not configured"))
	}

	payload, err := idtoken.Validate(ctx, token, v.ClientID)
	if err != nil {
		log.L.Info("google id token rejected", zap.Error(err))
		return nil, errs.Unauthenticated("Invalid Google token")
	}

	identity := &GoogleIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if identity.Subject == "" {
		return nil, errs.Unauthenticated("Invalid Google token")
	}
	return identity, nil
}
