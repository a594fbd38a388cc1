package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	mockdb "github.com/sunidhi090894/FoodShare-sub000/db/mock"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/util"
	"go.uber.org/mock/gomock"
)

func TestGetAdminStatsAPI(t *testing.T) {
	admin, _ := randomUser(t, util.AdminRole)

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, admin)
				store.EXPECT().CountUsersByRole(gomock.Any(), gomock.Eq(util.DonorRole)).Times(1).Return(int64(12), nil)
				store.EXPECT().CountUsersByRole(gomock.Any(), gomock.Eq(util.RecipientRole)).Times(1).Return(int64(8), nil)
				store.EXPECT().CountUsersByRole(gomock.Any(), gomock.Eq(util.VolunteerRole)).Times(1).Return(int64(25), nil)
				store.EXPECT().CountUsersByRole(gomock.Any(), gomock.Eq(util.AdminRole)).Times(1).Return(int64(1), nil)
				store.EXPECT().CountOrganizations(gomock.Any()).Times(1).Return(int64(8), nil)
				store.EXPECT().CountOffersByStatus(gomock.Any(), gomock.Eq("available")).Times(1).Return(int64(5), nil)
				store.EXPECT().CountOffersByStatus(gomock.Any(), gomock.Eq("completed")).Times(1).Return(int64(30), nil)
				store.EXPECT().CountOffersByStatus(gomock.Any(), gomock.Eq("expired")).Times(1).Return(int64(3), nil)
				store.EXPECT().CountMatches(gomock.Any()).Times(1).Return(int64(33), nil)
				store.EXPECT().CountDeliveriesByStatus(gomock.Any(), gomock.Eq("pending")).Times(1).Return(int64(2), nil)
				store.EXPECT().CountDeliveriesByStatus(gomock.Any(), gomock.Eq("completed")).Times(1).Return(int64(28), nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp adminStatsResponse
				err := json.NewDecoder(recorder.Body).Decode(&rsp)
				require.NoError(t, err)
				require.Equal(t, int64(12), rsp.Users.Donors)
				require.Equal(t, int64(25), rsp.Users.Volunteers)
				require.Equal(t, int64(33), rsp.Matches)
				require.Equal(t, int64(28), rsp.Deliveries.Completed)
			},
		},
		{
			name: "ForbiddenForDonor",
			buildStubs: func(store *mockdb.MockStore) {
				donor := admin
				donor.Role = util.DonorRole
				expectRoleCheck(store, donor)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "DisabledAdmin",
			buildStubs: func(store *mockdb.MockStore) {
				disabled := admin
				disabled.IsActive = false
				expectRoleCheck(store, disabled)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
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

			request, err := http.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, admin.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestVerifyOrganizationAPI(t *testing.T) {
	admin, _ := randomUser(t, util.AdminRole)
	recipient, _ := randomUser(t, util.RecipientRole)
	org := randomOrganization(recipient.ID)

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, admin)

				verified := org
				verified.IsVerified = true
				store.EXPECT().
					SetOrganizationVerified(gomock.Any(), gomock.Eq(db.SetOrganizationVerifiedParams{
						ID:         org.ID,
						IsVerified: true,
					})).
					Times(1).
					Return(verified, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp organizationResponse
				err := json.NewDecoder(recorder.Body).Decode(&rsp)
				require.NoError(t, err)
				require.True(t, rsp.IsVerified)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, admin)
				store.EXPECT().
					SetOrganizationVerified(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Organization{}, db.ErrRecordNotFound)
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

			url := fmt.Sprintf("/v1/admin/organizations/%d/verify", org.ID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, admin.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
