package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"orderbot/config"
	"orderbot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_WithoutCredentialsLogsOnly(t *testing.T) {
	svc, err := NewNotificationService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: &config.FirebaseConfig{ProjectID: "orderbot"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.IsType(t, &logSender{}, svc)

	alert := &service.StaffAlert{Title: "New order TP1", Body: "1 item(s), $12.99"}

	report, err := svc.Multicast(t.Context(), []string{"a", "b"}, alert)
	require.NoError(t, err)
	assert.Equal(t, &service.AlertReport{Sent: 2}, report)
	assert.NoError(t, svc.Send(t.Context(), "a", alert))
}
