package services

import (
	"log/slog"
	"testing"

	"account-vault/domain"
	"account-vault/errors"
	"account-vault/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should mint and bind a valid account", func(t *testing.T) {
		req := require.New(t)
		mockRegistry := mocks.NewMockIRegistry(ctrl)
		mockCodec := mocks.NewMockICodec(ctrl)

		var bound domain.Account
		mockRegistry.EXPECT().
			BindAccount(2, gomock.Any()).
			DoAndReturn(func(_ int, account domain.Account) error {
				bound = account
				return nil
			}).Times(1)

		svc := NewAccountService(mockRegistry, mockCodec, slog.Default())
		account, err := svc.Create(2, "Alice Bright", "")
		req.NoError(err)
		req.Equal(account, bound)
		req.NoError(account.Validate())
		req.Equal("AB", account.DisplayAvatar())
	})

	t.Run("should propagate an occupied slot", func(t *testing.T) {
		req := require.New(t)
		mockRegistry := mocks.NewMockIRegistry(ctrl)
		mockCodec := mocks.NewMockICodec(ctrl)
		mockRegistry.EXPECT().BindAccount(1, gomock.Any()).Return(errors.ErrSlotOccupied)

		svc := NewAccountService(mockRegistry, mockCodec, slog.Default())
		_, err := svc.Create(1, "Alice", "")
		req.ErrorIs(err, errors.ErrSlotOccupied)
	})

	t.Run("should refuse a blank name without touching the registry", func(t *testing.T) {
		req := require.New(t)
		mockRegistry := mocks.NewMockIRegistry(ctrl)
		mockCodec := mocks.NewMockICodec(ctrl)
		mockRegistry.EXPECT().BindAccount(gomock.Any(), gomock.Any()).Times(0)

		svc := NewAccountService(mockRegistry, mockCodec, slog.Default())
		_, err := svc.Create(1, "   ", "")
		req.ErrorIs(err, errors.ErrInvalidAccount)
	})
}

func TestAccountService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockCodec := mocks.NewMockICodec(ctrl)

	alice := testAccount(t, "Alice")
	slots := emptySlots(3)
	slots[0].Account = &alice
	mockRegistry.EXPECT().ListSlots().Return(slots).AnyTimes()
	mockCodec.EXPECT().Encode(alice).Return("avt1payload", nil)

	svc := NewAccountService(mockRegistry, mockCodec, slog.Default())

	payload, err := svc.Export(1)
	req.NoError(err)
	req.Equal("avt1payload", payload)

	_, err = svc.Export(2)
	req.ErrorIs(err, errors.ErrSlotAlreadyEmpty)
	_, err = svc.Export(4)
	req.ErrorIs(err, errors.ErrInvalidSlot)
}
