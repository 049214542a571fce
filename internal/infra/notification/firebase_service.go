package notification

import (
	"context"
	"log/slog"

	"orderbot/config"
	"orderbot/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the FCM sender, or a logging stand-in when
// Firebase credentials are not configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, staff alerts will only be logged")

		return &logSender{logger: params.Logger}, nil
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create FCM client")
	}

	return &fcmSender{client: client}, nil
}

type fcmSender struct {
	client *messaging.Client
}

func (s *fcmSender) Send(ctx context.Context, token string, alert *service.StaffAlert) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: notificationOf(alert),
		Data:         alert.Data,
	})
	if err != nil {
		if tokenGone(err) {
			return errors.Wrap(service.ErrDeviceTokenInvalid, err.Error())
		}

		return errors.Wrap(err, "failed to send FCM message")
	}

	return nil
}

// Multicast splits tokens into FCM-sized chunks. A chunk that fails outright
// aborts the rest; the report covers the chunks already sent.
func (s *fcmSender) Multicast(ctx context.Context, tokens []string, alert *service.StaffAlert) (*service.AlertReport, error) {
	report := &service.AlertReport{}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		chunk := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: notificationOf(alert),
			Data:         alert.Data,
		})
		if err != nil {
			return report, errors.Wrapf(err, "failed to multicast to %d devices", len(chunk))
		}

		report.Sent += resp.SuccessCount
		report.Failed += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Error != nil && tokenGone(r.Error) {
				report.InvalidTokens = append(report.InvalidTokens, chunk[i])
			}
		}
	}

	return report, nil
}

func notificationOf(alert *service.StaffAlert) *messaging.Notification {
	return &messaging.Notification{Title: alert.Title, Body: alert.Body}
}

func tokenGone(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

// logSender stands in for FCM in development.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, _ string, alert *service.StaffAlert) error {
	s.logger.InfoContext(ctx, "[LogNotification] Push skipped",
		slog.String("title", alert.Title),
		slog.String("body", alert.Body),
	)

	return nil
}

func (s *logSender) Multicast(ctx context.Context, tokens []string, alert *service.StaffAlert) (*service.AlertReport, error) {
	s.logger.InfoContext(ctx, "[LogNotification] Push skipped",
		slog.String("title", alert.Title),
		slog.String("body", alert.Body),
		slog.Int("device_count", len(tokens)),
	)

	return &service.AlertReport{Sent: len(tokens)}, nil
}
