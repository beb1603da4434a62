package assist_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/assist"
	"github.com/travelflow/tripflow/internal/domain"
)

// scriptedModel serves a fixed generated_text payload and counts calls.
func scriptedModel(t *testing.T, generated string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprintf(w, `[{"generated_text":%q}]`, generated)
	}))
}

func TestClient_DisabledReturnsZeroWithoutNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := assist.New(srv.URL, "", "")
	assert.False(t, c.Enabled())

	groups, err := c.SuggestPacking(context.Background(), "Lisbon", "June")
	require.NoError(t, err)
	assert.Nil(t, groups)
	assert.Zero(t, calls.Load(), "disabled client must not call the API")
}

func TestClient_SuggestPackingParsesGroups(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, `Here you go:
[{"category":"Clothing","items":["Raincoat","Boots"]},{"category":"Documents","items":["Passport"]}]
Enjoy the trip!`, &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "test-model")
	groups, err := c.SuggestPacking(context.Background(), "Oslo", "November")

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Clothing", groups[0].Category)
	assert.Equal(t, []string{"Raincoat", "Boots"}, groups[0].Items)
}

func TestClient_MalformedOutputIsNoSuggestion(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, "Sorry, I cannot help with that.", &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	groups, err := c.SuggestPacking(context.Background(), "Lisbon", "June")

	require.NoError(t, err)
	assert.Nil(t, groups)
}

func TestClient_SuggestNextStop(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, `{"name":"Porto","reason":"Scenic coastal drive from Lisbon","lat":41.15,"lng":-8.61}`, &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	got, err := c.SuggestNextStop(context.Background(), []domain.Stop{{Place: "Lisbon", Lat: 38.7, Lng: -9.1}})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Porto", got.Name)
	assert.InDelta(t, 41.15, got.Lat, 1e-9)
}

func TestClient_SuggestNextStopEmptyRoute(t *testing.T) {
	c := assist.New("http://unused", "test-key", "")
	got, err := c.SuggestNextStop(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_PhrasesStripCodeFence(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, "```json\n[{\"text\":\"Obrigado\",\"translation\":\"Thank you\",\"pronunciation\":\"oh-bree-GAH-doo\"}]\n```", &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	phrases, err := c.Phrases(context.Background(), "Portugal")

	require.NoError(t, err)
	require.Len(t, phrases, 1)
	assert.Equal(t, "Obrigado", phrases[0].Text)
	assert.Equal(t, "Thank you", phrases[0].Translation)
}

func TestClient_SuggestTasks(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, `["Send proposal to client","Confirm hotel availability"]`, &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	trip := &domain.Trip{TripName: "Italy 2026", ClientName: "Ada", Status: domain.StatusProposal}
	tasks, err := c.SuggestTasks(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, []string{"Send proposal to client", "Confirm hotel availability"}, tasks)
}

func TestClient_ChatReturnsFreeText(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, "Pack light layers; evenings in Kyoto can be cool in October.", &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	trip := &domain.Trip{TripName: "Japan", ClientName: "Ada", Stops: []domain.Stop{{Place: "Kyoto", Start: "2026-10-01", End: "2026-10-05"}}}
	reply, err := c.Chat(context.Background(), trip, []assist.ChatMessage{{Role: "user", Text: "hi"}}, "What should I pack?")

	require.NoError(t, err)
	assert.Contains(t, reply, "Kyoto")
	assert.Equal(t, int64(1), calls.Load())
}

func TestClient_ChatWithoutTrip(t *testing.T) {
	var calls atomic.Int64
	srv := scriptedModel(t, "Try the Algarve in June.", &calls)
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	reply, err := c.Chat(context.Background(), nil, nil, "where should I go?")

	require.NoError(t, err)
	assert.Equal(t, "Try the Algarve in June.", reply)
	assert.Equal(t, int64(1), calls.Load())
}

func TestClient_ErrorStatusSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := assist.New(srv.URL, "test-key", "")
	_, err := c.SuggestPacking(context.Background(), "Lisbon", "June")
	assert.Error(t, err)
}
