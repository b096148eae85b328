package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"choco_checkout/internal/domain/entities"
	mock_interfaces "choco_checkout/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReconciliationUseCase_ListUnrecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	journal := mock_interfaces.NewMockIPaymentJournal(ctrl)
	uc := NewReconciliationUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), journal)

	journal.EXPECT().Available().Return(true)
	journal.EXPECT().ListByStatus(gomock.Any(), entities.PaymentStatusCompleted).Return([]entities.PaymentJournalEntry{
		{PaymentID: "pay-1", Status: entities.PaymentStatusCompleted, OrderID: "ord-1"},
		{PaymentID: "pay-2", Status: entities.PaymentStatusCompleted},
	}, nil)

	got, err := uc.ListUnrecorded(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].PaymentID != "pay-2" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestReconciliationUseCase_ListUnrecordedJournalDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	journal := mock_interfaces.NewMockIPaymentJournal(ctrl)
	uc := NewReconciliationUseCase(nil, journal)

	journal.EXPECT().Available().Return(false)

	if _, err := uc.ListUnrecorded(context.Background()); !errors.Is(err, ErrJournalDown) {
		t.Fatalf("expected ErrJournalDown, got %v", err)
	}
}

func TestReconciliationUseCase_CompleteIncomplete(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil, nil)
		if _, err := uc.CompleteIncomplete(context.Background(), "", "tx"); !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
		if _, err := uc.CompleteIncomplete(context.Background(), "pay-1", ""); !errors.Is(err, ErrMissingTxID) {
			t.Fatalf("expected ErrMissingTxID, got %v", err)
		}
	})

	t.Run("completes and journals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		journal := mock_interfaces.NewMockIPaymentJournal(ctrl)
		uc := NewReconciliationUseCase(gateway, journal)

		gateway.EXPECT().Complete(gomock.Any(), "pay-1", "tx-1").Return(entities.GatewayResponse{
			StatusCode: http.StatusOK,
			Payment:    entities.Payment{ID: "pay-1", Amount: decimal.RequireFromString("4.5")},
		}, nil)
		journal.EXPECT().Available().Return(true)
		journal.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.PaymentJournalEntry{
			PaymentID: "pay-1", SessionID: "sess-9", Status: entities.PaymentStatusSubmitted, LastError: "browser closed",
		}, nil)
		journal.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.PaymentJournalEntry) error {
			if e.Status != entities.PaymentStatusCompleted || e.TxID != "tx-1" || e.SessionID != "sess-9" || e.LastError != "" {
				t.Fatalf("unexpected journal entry: %+v", e)
			}
			if !e.Amount.Equal(decimal.RequireFromString("4.5")) {
				t.Fatalf("unexpected amount: %s", e.Amount)
			}
			return nil
		})

		if _, err := uc.CompleteIncomplete(context.Background(), " pay-1 ", "tx-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure skips journal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		journal := mock_interfaces.NewMockIPaymentJournal(ctrl)
		uc := NewReconciliationUseCase(gateway, journal)

		gateway.EXPECT().Complete(gomock.Any(), "pay-1", "tx-1").Return(entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrUpstream, StatusCode: 404})

		if _, err := uc.CompleteIncomplete(context.Background(), "pay-1", "tx-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
