package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/esports-registry/db/dbtest"
	"github.com/Dosada05/esports-registry/hub"
	"github.com/Dosada05/esports-registry/metrics"
	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/server"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

type testApp struct {
	conn    *sql.DB
	hub     *hub.Hub
	handler http.Handler
}

func newApp(t *testing.T) *testApp {
	t.Helper()

	conn := dbtest.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	wsHub := hub.New(logger)
	go wsHub.Run(ctx)

	reg := prometheus.NewRegistry()
	srv := server.New(server.Options{
		DB:             conn,
		Logger:         logger,
		Metrics:        metrics.NewService(reg),
		MetricsHandler: metrics.NewMetricsHandler(reg),
		Hub:            wsHub,
		Now:            func() time.Time { return now },
	})
	return &testApp{conn: conn, hub: wsHub, handler: srv.Router}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	return decode[map[string]any](t, rec)["message"].(string)
}

func (a *testApp) createTournament(t *testing.T, name string, start, end models.Date) int {
	t.Helper()
	body := `{"tournament_name":"` + name + `","start_date":"` + start.String() + `","end_date":"` + end.String() + `","prize_pool":"2500.50"}`
	rec := a.do(t, http.MethodPost, "/api/tournaments", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int(decode[map[string]any](t, rec)["tournament_id"].(float64))
}

func registrationBody(tournamentID int, team string, handles ...string) string {
	players := make([]map[string]string, 0, len(handles))
	for _, h := range handles {
		players = append(players, map[string]string{"name": "Name " + h, "username": h, "country": "FI"})
	}
	b, _ := json.Marshal(map[string]any{
		"tournamentId": strconv.Itoa(tournamentID),
		"teamName":     team,
		"players":      players,
	})
	return string(b)
}

var today = models.DateOf(now)

func TestRegisterThenListRegistrations(t *testing.T) {
	app := newApp(t)
	id := app.createTournament(t, "Autumn Major", today.AddDays(7), today.AddDays(9))

	rec := app.do(t, http.MethodPost, "/register", registrationBody(id, "Alpha", "a1", "a2"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Registration successful!", message(t, rec))

	rec = app.do(t, http.MethodGet, "/api/registrations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	views := decode[[]models.RegistrationView](t, rec)
	assert.Equal(t, []models.RegistrationView{{TeamName: "Alpha", TournamentName: "Autumn Major"}}, views)
}

func TestRegisterFailureLeavesNoRows(t *testing.T) {
	app := newApp(t)
	id := app.createTournament(t, "Autumn Major", today, today)

	rec := app.do(t, http.MethodPost, "/register", registrationBody(id, "Alpha", "dup", "dup"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An error occurred during registration. Please check the server logs.", message(t, rec))

	assert.Zero(t, dbtest.Count(t, app.conn, `SELECT COUNT(*) FROM team WHERE team_name = 'Alpha'`))
	assert.Zero(t, dbtest.Count(t, app.conn, `SELECT COUNT(*) FROM player`))
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	app := newApp(t)

	rec := app.do(t, http.MethodPost, "/register", `{"teamName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, message(t, rec))

	rec = app.do(t, http.MethodPost, "/register", `{"tournamentId":"five","teamName":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/register", `{"tournamentId":1,"teamName":"  ","players":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/register", `{"tournamentId":1,"teamName":"Delta","players":[{"name":"","username":"d1","country":"SE"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamCreateUpdateShowsNewName(t *testing.T) {
	app := newApp(t)

	rec := app.do(t, http.MethodPost, "/api/teams", `{"team_name":"Bravo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Team created.", message(t, rec))
	id := int(decode[map[string]any](t, rec)["team_id"].(float64))

	rec = app.do(t, http.MethodPut, "/api/teams/"+strconv.Itoa(id), `{"team_name":"Charlie"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Team updated.", message(t, rec))

	rec = app.do(t, http.MethodGet, "/api/teams-public", "")
	require.Equal(t, http.StatusOK, rec.Code)
	teams := decode[[]models.Team](t, rec)
	require.Len(t, teams, 1)
	assert.Equal(t, "Charlie", teams[0].Name)
}

func TestDeleteTeamRemovesJoinRows(t *testing.T) {
	app := newApp(t)
	first := app.createTournament(t, "First", today, today.AddDays(1))
	second := app.createTournament(t, "Second", today, today.AddDays(1))

	rec := app.do(t, http.MethodPost, "/register", registrationBody(first, "Delta", "d1", "d2", "d3"))
	require.Equal(t, http.StatusCreated, rec.Code)
	teamID := int(decode[map[string]any](t, rec)["team_id"].(float64))
	_, err := app.conn.Exec(`INSERT INTO team_tournament (team_id, tournament_id) VALUES ($1, $2)`, teamID, second)
	require.NoError(t, err)

	rec = app.do(t, http.MethodDelete, "/api/teams/"+strconv.Itoa(teamID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Team deleted.", message(t, rec))

	rec = app.do(t, http.MethodGet, "/api/dashboard-data", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode[models.DashboardData](t, rec)
	for _, m := range data.Memberships {
		assert.NotEqual(t, teamID, m.TeamID)
	}
	for _, r := range data.Registrations {
		assert.NotEqual(t, teamID, r.TeamID)
	}
	assert.Len(t, data.Players, 3)
	assert.Len(t, data.Tournaments, 2)
}

func TestMissingAndInvalidIDs(t *testing.T) {
	app := newApp(t)

	rec := app.do(t, http.MethodDelete, "/api/players/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "player not found", message(t, rec))

	rec = app.do(t, http.MethodPut, "/api/tournaments/12", `{"tournament_name":"X","start_date":"2026-01-01","end_date":"2026-01-02","prize_pool":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/teams/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerEndpoints(t *testing.T) {
	app := newApp(t)

	rec := app.do(t, http.MethodPost, "/api/players", `{"player_name":"Zed","username":"zed","country":"NO"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Player created.", message(t, rec))
	id := strconv.Itoa(int(decode[map[string]any](t, rec)["player_id"].(float64)))

	rec = app.do(t, http.MethodPost, "/api/players", `{"player_name":"Amy","username":"zed","country":"NO"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create player.", message(t, rec))

	rec = app.do(t, http.MethodPost, "/api/players", `{"player_name":"Amy","username":"amy","country":"US"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/players/"+id, `{"player_name":"Zed Z","username":"zed","country":"NO"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Player updated.", message(t, rec))

	rec = app.do(t, http.MethodGet, "/api/players-public", "")
	players := decode[[]models.Player](t, rec)
	require.Len(t, players, 2)
	assert.Equal(t, "Amy", players[0].Name)
	assert.Equal(t, "Zed Z", players[1].Name)

	rec = app.do(t, http.MethodDelete, "/api/players/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Player deleted.", message(t, rec))
}

func TestTournamentEndpoints(t *testing.T) {
	app := newApp(t)
	id := app.createTournament(t, "Winter Cup", today.AddDays(-5), today.AddDays(-1))
	open := app.createTournament(t, "Open Cup", today, today.AddDays(2))

	rec := app.do(t, http.MethodPost, "/api/tournaments", `{"tournament_name":"Bad","start_date":"2026-13-01","end_date":"2026-12-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/tournaments-list", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.TournamentSummary](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, open, list[0].ID)

	rec = app.do(t, http.MethodPut, "/api/tournaments/"+strconv.Itoa(id), `{"tournament_name":"Winter Cup","start_date":"2026-10-20","end_date":"2026-10-22","prize_pool":100}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tournament updated.", message(t, rec))

	rec = app.do(t, http.MethodDelete, "/api/tournaments/"+strconv.Itoa(id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tournament deleted.", message(t, rec))
}

func TestHomepageData(t *testing.T) {
	app := newApp(t)
	app.createTournament(t, "Later", today.AddDays(20), today.AddDays(21))
	app.createTournament(t, "Sooner", today.AddDays(1), today.AddDays(2))
	app.createTournament(t, "Over", today.AddDays(-9), today.AddDays(-8))

	rec := app.do(t, http.MethodGet, "/api/homepage-data", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stats       models.HomepageStats `json:"stats"`
		Tournaments []map[string]any     `json:"tournaments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 3*2500.50, body.Stats.Prizes, 0.001)
	require.Len(t, body.Tournaments, 2)
	assert.Equal(t, "Sooner", body.Tournaments[0]["tournament_name"])
	assert.Equal(t, today.AddDays(1).String(), body.Tournaments[0]["start_date"])
	assert.Contains(t, body.Tournaments[0], "prize_pool")
}

func TestSnapshotExportWithoutStorage(t *testing.T) {
	app := newApp(t)

	rec := app.do(t, http.MethodPost, "/api/dashboard-data/export", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	app := newApp(t)

	rec := app.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	app.do(t, http.MethodPost, "/api/teams", `{"team_name":"Echo"}`)
	rec = app.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `esports_units_of_work_total{operation="team.create",outcome="committed"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/api/teams"`)

	rec = app.do(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/homepage-data"`)
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/teams", nil)
	req.Header.Set("Origin", "https://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLiveFeedReceivesRegistration(t *testing.T) {
	app := newApp(t)
	id := app.createTournament(t, "Live Cup", today, today.AddDays(3))

	srv := httptest.NewServer(app.handler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tournaments/" + strconv.Itoa(id)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return app.hub.RoomSize(hub.TournamentRoom(id)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/register", "application/json", bytes.NewBufferString(registrationBody(id, "Foxtrot", "f1")))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string `json:"type"`
		Payload struct {
			TeamID       int   `json:"team_id"`
			TournamentID int   `json:"tournament_id"`
			PlayerIDs    []int `json:"player_ids"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "registration.created", msg.Type)
	assert.Equal(t, id, msg.Payload.TournamentID)
	assert.Len(t, msg.Payload.PlayerIDs, 1)
}
