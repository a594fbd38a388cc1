package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"github.com/sunidhi090894/FoodShare-sub000/util"
)

func createRandomOffer(t *testing.T, donor User) SurplusOffer {
	arg := CreateSurplusOfferParams{
		DonorID:       donor.ID,
		Title:         "剩余面包-" + util.RandomString(4),
		Category:      "bakery",
		Quantity:      util.RandomFloat(1, 20),
		Unit:          "kg",
		PickupAddress: util.RandomString(20),
		Longitude:     util.RandomFloat(116.0, 117.0),
		Latitude:      util.RandomFloat(39.0, 40.0),
		ExpiresAt:     time.Now().Add(12 * time.Hour),
		Note:          "需冷藏",
	}

	offer, err := testStore.CreateSurplusOffer(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, offer)

	require.Equal(t, arg.DonorID, offer.DonorID)
	require.Equal(t, arg.Title, offer.Title)
	require.Equal(t, arg.Quantity, offer.Quantity)
	require.Equal(t, "available", offer.Status)
	require.WithinDuration(t, arg.ExpiresAt, offer.ExpiresAt, time.Second)

	return offer
}

func TestCreateSurplusOffer(t *testing.T) {
	donor := createRandomUser(t)
	createRandomOffer(t, donor)
}

func TestListSurplusOffers_StatusFilter(t *testing.T) {
	donor := createRandomUser(t)
	offer := createRandomOffer(t, donor)

	offers, err := testStore.ListSurplusOffers(context.Background(), ListSurplusOffersParams{
		Status: pgtype.Text{String: "available", Valid: true},
		Limit:  100,
		Offset: 0,
	})
	require.NoError(t, err)
	for _, o := range offers {
		require.Equal(t, "available", o.Status)
	}

	// 取消后不应再出现在 available 过滤结果中
	_, err = testStore.UpdateSurplusOfferStatus(context.Background(), UpdateSurplusOfferStatusParams{
		ID:     offer.ID,
		Status: "cancelled",
	})
	require.NoError(t, err)

	offers, err = testStore.ListSurplusOffers(context.Background(), ListSurplusOffersParams{
		Status: pgtype.Text{String: "available", Valid: true},
		Limit:  100,
		Offset: 0,
	})
	require.NoError(t, err)
	for _, o := range offers {
		require.NotEqual(t, offer.ID, o.ID)
	}
}

func TestExpireOffersTx(t *testing.T) {
	donor := createRandomUser(t)
	offer := createRandomOffer(t, donor)

	org := createRandomOrganization(t)
	_, err := testStore.CreateFoodRequest(context.Background(), CreateFoodRequestParams{
		OfferID:        offer.ID,
		OrganizationID: org.ID,
		Message:        "周末供餐需要",
	})
	require.NoError(t, err)

	// 以未来时间做截止，发布单一定落入过期集合
	result, err := testStore.ExpireOffersTx(context.Background(), ExpireOffersTxParams{
		Now: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	found := false
	for _, o := range result.Expired {
		if o.ID == offer.ID {
			found = true
			require.Equal(t, "expired", o.Status)
		}
	}
	require.True(t, found)

	// 过期发布单的 pending 请求被取消
	requests, err := testStore.ListRequestsByOffer(context.Background(), offer.ID)
	require.NoError(t, err)
	for _, r := range requests {
		require.Equal(t, "cancelled", r.Status)
	}
}
