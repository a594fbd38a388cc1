package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	mockdb "github.com/sunidhi090894/FoodShare-sub000/db/mock"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/util"
	"go.uber.org/mock/gomock"
)

func randomNotification(userID int64) db.Notification {
	return db.Notification{
		ID:          util.RandomInt(1, 1000),
		UserID:      userID,
		Type:        "request",
		Title:       "收到新的领取申请",
		Content:     "阳光救助站申请领取「面包和糕点」",
		RelatedType: pgtype.Text{String: "food_request", Valid: true},
		RelatedID:   pgtype.Int8{Int64: 7, Valid: true},
		CreatedAt:   time.Now(),
	}
}

func TestListNotificationsAPI(t *testing.T) {
	user, _ := randomUser(t, util.DonorRole)

	n := 4
	notifications := make([]db.Notification, n)
	for i := 0; i < n; i++ {
		notifications[i] = randomNotification(user.ID)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListUserNotifications(gomock.Any(), gomock.Eq(db.ListUserNotificationsParams{
			UserID: user.ID,
			Limit:  defaultPageLimit,
			Offset: 0,
		})).
		Times(1).
		Return(notifications, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/notifications", nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var rsp []notificationResponse
	err = json.NewDecoder(recorder.Body).Decode(&rsp)
	require.NoError(t, err)
	require.Len(t, rsp, n)
	require.NotNil(t, rsp[0].RelatedType)
	require.Equal(t, "food_request", *rsp[0].RelatedType)
}

func TestGetUnreadCountAPI(t *testing.T) {
	user, _ := randomUser(t, util.VolunteerRole)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		CountUnreadNotifications(gomock.Any(), gomock.Eq(user.ID)).
		Times(1).
		Return(int64(3), nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/notifications/unread-count", nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var rsp unreadCountResponse
	err = json.NewDecoder(recorder.Body).Decode(&rsp)
	require.NoError(t, err)
	require.Equal(t, int64(3), rsp.Count)
}

func TestMarkNotificationReadAPI(t *testing.T) {
	user, _ := randomUser(t, util.DonorRole)
	notification := randomNotification(user.ID)

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				read := notification
				read.IsRead = true
				store.EXPECT().
					MarkNotificationRead(gomock.Any(), gomock.Eq(db.MarkNotificationReadParams{
						ID:     notification.ID,
						UserID: user.ID,
					})).
					Times(1).
					Return(read, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp notificationResponse
				err := json.NewDecoder(recorder.Body).Decode(&rsp)
				require.NoError(t, err)
				require.True(t, rsp.IsRead)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					MarkNotificationRead(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Notification{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/notifications/%d/read", notification.ID)
			request, err := http.NewRequest(http.MethodPatch, url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestMarkAllNotificationsReadAPI(t *testing.T) {
	user, _ := randomUser(t, util.RecipientRole)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		MarkAllNotificationsRead(gomock.Any(), gomock.Eq(user.ID)).
		Times(1).
		Return(nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPatch, "/v1/notifications/read-all", nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
}
