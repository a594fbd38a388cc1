package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	mockdb "github.com/sunidhi090894/FoodShare-sub000/db/mock"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
)

func TestProcessTaskSendNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := NewTestTaskProcessor(store)

	payload := &SendNotificationPayload{
		UserID:      7,
		Type:        "delivery",
		Title:       "新的配送任务",
		Content:     "附近有一笔待认领的配送单",
		RelatedType: "delivery",
		RelatedID:   42,
		ExtraData:   map[string]any{"distance_km": 2.4},
	}
	jsonPayload, err := json.Marshal(payload)
	require.NoError(t, err)

	store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			require.Equal(t, payload.UserID, arg.UserID)
			require.Equal(t, payload.Type, arg.Type)
			require.Equal(t, payload.Title, arg.Title)
			require.True(t, arg.RelatedType.Valid)
			require.Equal(t, "delivery", arg.RelatedType.String)
			require.True(t, arg.RelatedID.Valid)
			require.Equal(t, int64(42), arg.RelatedID.Int64)
			return db.Notification{
				ID:      1,
				UserID:  arg.UserID,
				Type:    arg.Type,
				Title:   arg.Title,
				Content: arg.Content,
			}, nil
		})

	task := asynq.NewTask(TaskSendNotification, jsonPayload)
	err = processor.ProcessTaskSendNotification(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTaskSendNotification_BadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := NewTestTaskProcessor(store)

	task := asynq.NewTask(TaskSendNotification, []byte("not-json"))
	err := processor.ProcessTaskSendNotification(context.Background(), task)
	require.Error(t, err)
}

func TestProcessTaskExpireOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := NewTestTaskProcessor(store)

	offer := db.SurplusOffer{
		ID:        11,
		Status:    "available",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	store.EXPECT().
		GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
		Times(1).
		Return(offer, nil)
	store.EXPECT().
		ExpireOffersTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.ExpireOffersTxResult{Expired: []db.SurplusOffer{offer}}, nil)

	jsonPayload, err := json.Marshal(&ExpireOfferPayload{OfferID: offer.ID})
	require.NoError(t, err)

	task := asynq.NewTask(TaskExpireOffer, jsonPayload)
	err = processor.ProcessTaskExpireOffer(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTaskExpireOffer_AlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := NewTestTaskProcessor(store)

	store.EXPECT().
		GetSurplusOffer(gomock.Any(), gomock.Eq(int64(11))).
		Times(1).
		Return(db.SurplusOffer{ID: 11, Status: "completed"}, nil)

	jsonPayload, err := json.Marshal(&ExpireOfferPayload{OfferID: 11})
	require.NoError(t, err)

	task := asynq.NewTask(TaskExpireOffer, jsonPayload)
	err = processor.ProcessTaskExpireOffer(context.Background(), task)
	require.NoError(t, err)
}
