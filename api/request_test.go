package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	mockdb "github.com/sunidhi090894/FoodShare-sub000/db/mock"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/util"
	"go.uber.org/mock/gomock"
)

func TestCreateFoodRequestAPI(t *testing.T) {
	recipient, _ := randomUser(t, util.RecipientRole)
	org := randomOrganization(recipient.ID)
	donor, _ := randomUser(t, util.DonorRole)
	offer := randomOffer(donor.ID)

	request := db.FoodRequest{
		ID:             util.RandomInt(1, 1000),
		OfferID:        offer.ID,
		OrganizationID: org.ID,
		Status:         "pending",
		Message:        "希望用于周末的社区餐食",
		CreatedAt:      time.Now(),
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"message": request.Message},
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, recipient)
				store.EXPECT().
					GetOrganizationByOwner(gomock.Any(), gomock.Eq(recipient.ID)).
					Times(1).
					Return(org, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)
				store.EXPECT().
					CreateFoodRequest(gomock.Any(), gomock.Eq(db.CreateFoodRequestParams{
						OfferID:        offer.ID,
						OrganizationID: org.ID,
						Message:        request.Message,
					})).
					Times(1).
					Return(request, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp requestResponse
				err := json.NewDecoder(recorder.Body).Decode(&rsp)
				require.NoError(t, err)
				require.Equal(t, request.ID, rsp.ID)
				require.Equal(t, "pending", rsp.Status)
			},
		},
		{
			name: "NoOrganization",
			body: gin.H{"message": request.Message},
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, recipient)
				store.EXPECT().
					GetOrganizationByOwner(gomock.Any(), gomock.Eq(recipient.ID)).
					Times(1).
					Return(db.Organization{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "UnverifiedOrganization",
			body: gin.H{"message": request.Message},
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, recipient)
				unverified := org
				unverified.IsVerified = false
				store.EXPECT().
					GetOrganizationByOwner(gomock.Any(), gomock.Eq(recipient.ID)).
					Times(1).
					Return(unverified, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "OfferNotAvailable",
			body: gin.H{"message": request.Message},
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, recipient)
				store.EXPECT().
					GetOrganizationByOwner(gomock.Any(), gomock.Eq(recipient.ID)).
					Times(1).
					Return(org, nil)
				matched := offer
				matched.Status = "matched"
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(matched, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "DuplicateRequest",
			body: gin.H{"message": request.Message},
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, recipient)
				store.EXPECT().
					GetOrganizationByOwner(gomock.Any(), gomock.Eq(recipient.ID)).
					Times(1).
					Return(org, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)
				store.EXPECT().
					CreateFoodRequest(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.FoodRequest{}, db.ErrUniqueViolation)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
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

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/offers/%d/requests", offer.ID)
			httpRequest, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, httpRequest, server.tokenMaker, authorizationTypeBearer, recipient.ID, time.Minute)
			server.router.ServeHTTP(recorder, httpRequest)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestApproveRequestAPI(t *testing.T) {
	donor, _ := randomUser(t, util.DonorRole)
	recipient, _ := randomUser(t, util.RecipientRole)
	org := randomOrganization(recipient.ID)
	offer := randomOffer(donor.ID)

	foodRequest := db.FoodRequest{
		ID:             util.RandomInt(1, 1000),
		OfferID:        offer.ID,
		OrganizationID: org.ID,
		Status:         "pending",
		CreatedAt:      time.Now(),
	}

	txResult := db.ConfirmMatchTxResult{
		Request: db.FoodRequest{
			ID:             foodRequest.ID,
			OfferID:        offer.ID,
			OrganizationID: org.ID,
			Status:         "approved",
		},
		Offer:        offer,
		Organization: org,
		Match: db.Match{
			ID:             1,
			OfferID:        offer.ID,
			OrganizationID: org.ID,
			RequestID:      foodRequest.ID,
			Score:          82,
		},
		Delivery: db.Delivery{
			ID:             1,
			OfferID:        offer.ID,
			OrganizationID: org.ID,
			MatchID:        1,
			Status:         "pending",
		},
	}
	txResult.Offer.Status = "matched"

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(foodRequest, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)
				store.EXPECT().
					ConfirmMatchTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.ConfirmMatchTxParams) (db.ConfirmMatchTxResult, error) {
						require.Equal(t, foodRequest.ID, arg.RequestID)
						require.WithinDuration(t, time.Now(), arg.Now, time.Second)
						return txResult, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp approveRequestResponse
				err := json.NewDecoder(recorder.Body).Decode(&rsp)
				require.NoError(t, err)
				require.Equal(t, "approved", rsp.Request.Status)
				require.Equal(t, "matched", rsp.Offer.Status)
				require.Equal(t, txResult.Match.ID, rsp.Match.ID)
				require.Equal(t, txResult.Delivery.ID, rsp.Delivery.ID)
			},
		},
		{
			name: "RequestNotPending",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(foodRequest, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)
				store.EXPECT().
					ConfirmMatchTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ConfirmMatchTxResult{}, db.ErrRequestNotPending)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "OfferExpired",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(foodRequest, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)
				store.EXPECT().
					ConfirmMatchTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ConfirmMatchTxResult{}, db.ErrOfferExpired)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "NotOwner",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(foodRequest, nil)
				other := offer
				other.DonorID = donor.ID + 1
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(other, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "RequestNotFound",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(db.FoodRequest{}, db.ErrRecordNotFound)
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

			url := fmt.Sprintf("/v1/requests/%d/approve", foodRequest.ID)
			httpRequest, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			addAuthorization(t, httpRequest, server.tokenMaker, authorizationTypeBearer, donor.ID, time.Minute)
			server.router.ServeHTTP(recorder, httpRequest)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRejectRequestAPI(t *testing.T) {
	donor, _ := randomUser(t, util.DonorRole)
	recipient, _ := randomUser(t, util.RecipientRole)
	org := randomOrganization(recipient.ID)
	offer := randomOffer(donor.ID)

	foodRequest := db.FoodRequest{
		ID:             util.RandomInt(1, 1000),
		OfferID:        offer.ID,
		OrganizationID: org.ID,
		Status:         "pending",
		CreatedAt:      time.Now(),
	}

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(foodRequest, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)

				rejected := foodRequest
				rejected.Status = "rejected"
				store.EXPECT().
					UpdateFoodRequestStatus(gomock.Any(), gomock.Eq(db.UpdateFoodRequestStatusParams{
						ID:     foodRequest.ID,
						Status: "rejected",
					})).
					Times(1).
					Return(rejected, nil)
				store.EXPECT().
					GetOrganization(gomock.Any(), gomock.Eq(org.ID)).
					Times(1).
					Return(org, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp requestResponse
				err := json.NewDecoder(recorder.Body).Decode(&rsp)
				require.NoError(t, err)
				require.Equal(t, "rejected", rsp.Status)
			},
		},
		{
			name: "NotPending",
			buildStubs: func(store *mockdb.MockStore) {
				expectRoleCheck(store, donor)
				fulfilled := foodRequest
				fulfilled.Status = "fulfilled"
				store.EXPECT().
					GetFoodRequest(gomock.Any(), gomock.Eq(foodRequest.ID)).
					Times(1).
					Return(fulfilled, nil)
				store.EXPECT().
					GetSurplusOffer(gomock.Any(), gomock.Eq(offer.ID)).
					Times(1).
					Return(offer, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
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

			url := fmt.Sprintf("/v1/requests/%d/reject", foodRequest.ID)
			httpRequest, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			addAuthorization(t, httpRequest, server.tokenMaker, authorizationTypeBearer, donor.ID, time.Minute)
			server.router.ServeHTTP(recorder, httpRequest)
			tc.checkResponse(t, recorder)
		})
	}
}
