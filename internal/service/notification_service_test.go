package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports/mocks"
	"wallet-settings/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_Display_StampsAndPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockNotificationQueue(ctrl)
	svc := NewNotificationService(queue, newTestLogger())

	queue.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n domain.Notification) error {
			assert.NotEqual(t, uuid.Nil, n.ID)
			assert.False(t, n.CreatedAt.IsZero())
			assert.Equal(t, domain.NotificationError, n.Type)
			assert.Equal(t, "Toggling autopilot failed", n.Message)
			return nil
		},
	)

	svc.Display(context.Background(), domain.Notification{
		Type:    domain.NotificationError,
		Message: "Toggling autopilot failed",
	})
}

func TestNotificationService_Display_KeepsExistingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockNotificationQueue(ctrl)
	svc := NewNotificationService(queue, newTestLogger())

	id := uuid.New()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	queue.EXPECT().Push(gomock.Any(), domain.Notification{
		ID: id, Type: domain.NotificationInfo, Message: "hello", CreatedAt: at,
	}).Return(nil)

	svc.Display(context.Background(), domain.Notification{ID: id, Message: "hello", CreatedAt: at})
}

func TestNotificationService_Display_QueueError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	queue := mocks.NewMockNotificationQueue(ctrl)
	svc := NewNotificationService(queue, logger.NewWithWriter("debug", &buf))

	queue.EXPECT().Push(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc.Display(context.Background(), domain.Notification{Message: "x"})

	assert.Contains(t, buf.String(), "failed to enqueue notification")
	assert.Contains(t, buf.String(), "redis down")
}

func TestNotificationService_Display_NilQueue(t *testing.T) {
	var buf bytes.Buffer
	svc := NewNotificationService(nil, logger.NewWithWriter("debug", &buf))

	svc.Display(context.Background(), domain.Notification{Type: domain.NotificationWarning, Message: "careful"})

	assert.Contains(t, buf.String(), `"message":"careful"`)
	assert.Contains(t, buf.String(), `"type":"WARNING"`)
}

func TestNotificationService_Display_NotADiagnosticLogEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	queue := mocks.NewMockNotificationQueue(ctrl)
	svc := NewNotificationService(queue, logger.NewWithWriter("info", &buf))

	queue.EXPECT().Push(gomock.Any(), gomock.Any()).Return(nil)

	svc.Display(context.Background(), domain.Notification{
		Type:    domain.NotificationError,
		Message: "Toggling autopilot failed",
	})

	assert.Empty(t, buf.String())
}
