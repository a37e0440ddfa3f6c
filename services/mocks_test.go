package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mukeshkdas03/hostel-management-system/services"
)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Send(ctx context.Context, n services.ParentNotification) error {
	return m.Called(ctx, n).Error(0)
}
