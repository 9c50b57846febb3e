package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"niddle_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCardBody(main bool) map[string]interface{} {
	return map[string]interface{}{
		"card_number":     "4400430112345678",
		"card_valid_thru": "12/28",
		"card_name":       "TEST HOLDER",
		"card_cvv":        "123",
		"main":            main,
	}
}

func TestCardLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cards/add-card", token, addCardBody(true))
	require.Equal(t, http.StatusCreated, res.StatusCode, "add card: %s", body)

	var created struct {
		ID   uint `json:"card_id"`
		Main bool `json:"main"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.True(t, created.Main)
	assert.NotContains(t, body, "card_cvv", "the cvv is never echoed back")

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/cards/get-card-by-id/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/cards/get-all-cards-by-user", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Cards []struct {
			ID   uint `json:"card_id"`
			Main bool `json:"main"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Cards, 1)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/cards/delete-card-by-id/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/cards/get-card-by-id/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestChangeMainCard(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)

	var ids []uint
	for i := 0; i < 2; i++ {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cards/add-card", token, addCardBody(i == 0))
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var created struct {
			ID uint `json:"card_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		ids = append(ids, created.ID)
	}

	res, _ := ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/cards/change-main-card/%d", ids[1]), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, body := ts.SendRequest(t, http.MethodGet, "/api/v1/cards/get-all-cards-by-user", token, nil)
	var listing struct {
		Cards []struct {
			ID   uint `json:"card_id"`
			Main bool `json:"main"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Cards, 2)

	mains := 0
	for _, card := range listing.Cards {
		if card.Main {
			mains++
			assert.Equal(t, ids[1], card.ID)
		}
	}
	assert.Equal(t, 1, mains, "exactly one main card")
}

func TestCardForeignAccess(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ownerToken, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cards/add-card", ownerToken, addCardBody(false))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		ID uint `json:"card_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/cards/get-card-by-id/%d", created.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/cards/delete-card-by-id/%d", created.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
