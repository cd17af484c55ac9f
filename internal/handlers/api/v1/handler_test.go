package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	v1 "github.com/genroll/roulette-api/internal/handlers/api/v1"
	"github.com/genroll/roulette-api/internal/orchestrators/gacha"
	gachamock "github.com/genroll/roulette-api/internal/orchestrators/gacha/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *gachamock.MockService
	hub     *v1.Hub
	router  *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.service = gachamock.NewMockService(s.ctrl)
	s.hub = v1.NewHub()

	handler, err := v1.NewHandler(&v1.Config{
		Service: s.service,
		Hub:     s.hub,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router.Group("/api/v1"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var payload map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func (s *HandlerTestSuite) TestGetState() {
	s.service.EXPECT().
		GetState(gomock.Any(), &gacha.GetStateInput{ProfileID: "p1"}).
		Return(&gacha.GetStateOutput{
			State: &session.State{
				Settings: session.DefaultSettings(),
				UI:       session.DefaultUIState(),
			},
			CatalogStatus: gacha.CatalogReady,
		}, nil)

	rec := s.request(http.MethodGet, "/api/v1/profiles/p1/state", "")

	s.Equal(http.StatusOK, rec.Code)
	payload := s.decode(rec)
	s.Equal("ready", payload["catalogStatus"])
	s.NotNil(payload["state"])
}

func (s *HandlerTestSuite) TestUpdateSettings() {
	want := session.DefaultSettings()
	want.Theme = "light"

	s.service.EXPECT().
		UpdateSettings(gomock.Any(), &gacha.UpdateSettingsInput{ProfileID: "p1", Settings: want}).
		Return(&gacha.UpdateSettingsOutput{Settings: want}, nil)

	body, err := json.Marshal(want)
	s.Require().NoError(err)

	rec := s.request(http.MethodPut, "/api/v1/profiles/p1/settings", string(body))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("light", s.decode(rec)["theme"])
}

func (s *HandlerTestSuite) TestUpdateSettingsRejectsBadJSON() {
	rec := s.request(http.MethodPut, "/api/v1/profiles/p1/settings", "{not json")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateSettingsValidationErrorMapsTo400() {
	s.service.EXPECT().
		UpdateSettings(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("unknown language"))

	rec := s.request(http.MethodPut, "/api/v1/profiles/p1/settings", `{"lang":"fr"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["error"], "unknown language")
}

func (s *HandlerTestSuite) TestResetCharacterFilters() {
	s.service.EXPECT().
		ResetCharacterFilters(gomock.Any(), &gacha.ResetCharacterFiltersInput{ProfileID: "p1"}).
		Return(&gacha.ResetCharacterFiltersOutput{Filters: session.DefaultCharacterFilters()}, nil)

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/filters/characters/reset", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("cards", s.decode(rec)["viewMode"])
}

func (s *HandlerTestSuite) TestResetBossFilters() {
	s.service.EXPECT().
		ResetBossFilters(gomock.Any(), &gacha.ResetBossFiltersInput{ProfileID: "p1"}).
		Return(&gacha.ResetBossFiltersOutput{Filters: session.DefaultBossFilters()}, nil)

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/filters/bosses/reset", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("cards", s.decode(rec)["viewMode"])
}

func (s *HandlerTestSuite) TestGetPool() {
	s.service.EXPECT().
		GetPool(gomock.Any(), &gacha.GetPoolInput{ProfileID: "p1", Stage: catalog.StageCharacters}).
		Return(&gacha.GetPoolOutput{
			Visible:        []catalog.Item{{ID: "hutao", Name: "Hu Tao"}},
			SelectedIDs:    map[string]bool{"hutao": true},
			EffectiveCount: 1,
			SelectedCount:  1,
			TotalCount:     3,
		}, nil)

	rec := s.request(http.MethodGet, "/api/v1/profiles/p1/pool/characters", "")

	s.Equal(http.StatusOK, rec.Code)
	payload := s.decode(rec)
	s.Equal(float64(3), payload["totalCount"])
	s.Equal(float64(1), payload["effectiveCount"])
}

func (s *HandlerTestSuite) TestToggleSelectionNotFound() {
	s.service.EXPECT().
		ToggleSelection(gomock.Any(), &gacha.ToggleSelectionInput{
			ProfileID: "p1",
			Stage:     catalog.StageCharacters,
			ItemID:    "paimon",
		}).
		Return(nil, errors.NotFound("item not in catalog"))

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/pool/characters/toggle", `{"itemId":"paimon"}`)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestBulkSelect() {
	s.service.EXPECT().
		BulkSelect(gomock.Any(), &gacha.BulkSelectInput{
			ProfileID: "p1",
			Stage:     catalog.StageBosses,
			Action:    gacha.BulkClearAll,
		}).
		Return(&gacha.BulkSelectOutput{SelectedCount: 0, EffectiveCount: 0}, nil)

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/pool/bosses/bulk", `{"action":"clearAll"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(0), s.decode(rec)["selectedCount"])
}

func (s *HandlerTestSuite) TestSpin() {
	s.service.EXPECT().
		Spin(gomock.Any(), &gacha.SpinInput{ProfileID: "p1", Stage: catalog.StageCharacters}).
		Return(&gacha.SpinOutput{
			Started:  true,
			Duration: 9200 * time.Millisecond,
			Display:  []catalog.Item{{ID: "hutao"}},
		}, nil)

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/roll/characters/spin", "")

	s.Equal(http.StatusOK, rec.Code)
	payload := s.decode(rec)
	s.Equal(true, payload["started"])
	s.Equal(float64(9200), payload["durationMs"])
}

func (s *HandlerTestSuite) TestSpinWhileBusyReportsNotStarted() {
	s.service.EXPECT().
		Spin(gomock.Any(), gomock.Any()).
		Return(&gacha.SpinOutput{Started: false}, nil)

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/roll/characters/spin", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(false, s.decode(rec)["started"])
}

func (s *HandlerTestSuite) TestClearRoll() {
	s.service.EXPECT().
		ClearRoll(gomock.Any(), &gacha.ClearRollInput{ProfileID: "p1", Stage: catalog.StageBosses}).
		Return(&gacha.ClearRollOutput{}, nil)

	rec := s.request(http.MethodPost, "/api/v1/profiles/p1/roll/bosses/clear", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestGetRollState() {
	winner := catalog.Item{ID: "azhdaha", Name: "Azhdaha"}
	s.service.EXPECT().
		GetRollState(gomock.Any(), &gacha.GetRollStateInput{ProfileID: "p1", Stage: catalog.StageBosses}).
		Return(&gacha.GetRollStateOutput{
			State:    "landed",
			Offset:   -7000.5,
			Selected: &winner,
			Splash:   &winner,
		}, nil)

	rec := s.request(http.MethodGet, "/api/v1/profiles/p1/roll/bosses", "")

	s.Equal(http.StatusOK, rec.Code)
	payload := s.decode(rec)
	s.Equal("landed", payload["state"])
	s.Equal(-7000.5, payload["offset"])
}

func (s *HandlerTestSuite) TestListHistory() {
	s.service.EXPECT().
		ListHistory(gomock.Any(), &gacha.ListHistoryInput{ProfileID: "p1"}).
		Return(&gacha.ListHistoryOutput{
			Entries:       []session.HistoryEntry{{ID: "hist_1", Stage: "characters", ItemID: "hutao", ItemName: "Hu Tao"}},
			FilteredTotal: 1,
			Total:         2,
		}, nil)

	rec := s.request(http.MethodGet, "/api/v1/profiles/p1/history", "")

	s.Equal(http.StatusOK, rec.Code)
	payload := s.decode(rec)
	s.Equal(float64(1), payload["filteredTotal"])
	s.Equal(float64(2), payload["total"])
}

func (s *HandlerTestSuite) TestDeleteHistoryEntry() {
	s.service.EXPECT().
		DeleteHistoryEntry(gomock.Any(), &gacha.DeleteHistoryEntryInput{ProfileID: "p1", EntryID: "hist_1"}).
		Return(&gacha.DeleteHistoryEntryOutput{Total: 0}, nil)

	rec := s.request(http.MethodDelete, "/api/v1/profiles/p1/history/hist_1", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(0), s.decode(rec)["total"])
}

func (s *HandlerTestSuite) TestDeleteHistoryFilteredScope() {
	s.service.EXPECT().
		DeleteFilteredHistory(gomock.Any(), &gacha.DeleteFilteredHistoryInput{ProfileID: "p1"}).
		Return(&gacha.DeleteFilteredHistoryOutput{Removed: 3, Total: 1}, nil)

	rec := s.request(http.MethodDelete, "/api/v1/profiles/p1/history?scope=filtered", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(3), s.decode(rec)["removed"])
}

func (s *HandlerTestSuite) TestDeleteHistoryClearsByDefault() {
	s.service.EXPECT().
		ClearHistory(gomock.Any(), &gacha.ClearHistoryInput{ProfileID: "p1"}).
		Return(&gacha.ClearHistoryOutput{}, nil)

	rec := s.request(http.MethodDelete, "/api/v1/profiles/p1/history", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteHistoryRejectsUnknownScope() {
	rec := s.request(http.MethodDelete, "/api/v1/profiles/p1/history?scope=everything", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRefreshCatalog() {
	s.service.EXPECT().
		RefreshCatalog(gomock.Any(), &gacha.RefreshCatalogInput{}).
		Return(&gacha.RefreshCatalogOutput{Status: gacha.CatalogLoading}, nil)

	rec := s.request(http.MethodPost, "/api/v1/catalog/refresh", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("loading", s.decode(rec)["status"])
}

func (s *HandlerTestSuite) TestStreamRollDeliversMatchingEvents() {
	server := httptest.NewServer(s.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws/roulette/characters?profileId=p1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	defer func() { _ = conn.Close() }()

	// the handler registers the subscription before the read loop starts,
	// but give the server goroutine a moment to get there
	s.Require().Eventually(func() bool { return s.hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	s.hub.Publish(gacha.Event{ProfileID: "p2", Stage: catalog.StageCharacters, Type: gacha.EventFrame})
	s.hub.Publish(gacha.Event{ProfileID: "p1", Stage: catalog.StageBosses, Type: gacha.EventFrame})
	s.hub.Publish(gacha.Event{
		ProfileID: "p1",
		Stage:     catalog.StageCharacters,
		Type:      gacha.EventTick,
		State:     "spinning",
		Offset:    -1234.5,
	})

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	s.Require().NoError(err)

	var event gacha.Event
	s.Require().NoError(json.Unmarshal(payload, &event))
	s.Equal("p1", event.ProfileID)
	s.Equal(catalog.StageCharacters, event.Stage)
	s.Equal(gacha.EventTick, event.Type, "events for other profiles and stages are filtered out")
	s.Equal(-1234.5, event.Offset)
}

func (s *HandlerTestSuite) TestStreamRollRequiresProfileID() {
	rec := s.request(http.MethodGet, "/api/v1/ws/roulette/characters", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestStreamRollRejectsUnknownStage() {
	rec := s.request(http.MethodGet, "/api/v1/ws/roulette/weapons?profileId=p1", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
