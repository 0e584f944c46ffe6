package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"othello/agent"
	"othello/config"
	"othello/game"
	"othello/searcher"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SearchDepth: 2,
		Evaluation:  "positional",
		Server:      config.ServerConfig{Port: 0, MaxDepth: 3},
	}
}

func postFindMove(t *testing.T, url string, body any) (*http.Response, []byte) {
	t.Helper()
	raw, ok := body.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	resp, err := http.Post(url+"/findmove", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func depth(d int) *int {
	return &d
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")

	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFindMove(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testConfig()))
	defer srv.Close()

	t.Run("returns the searched move", func(t *testing.T) {
		b := game.NewBoard()
		b.Pass()

		resp, body := postFindMove(t, srv.URL, agent.FindMoveRequest{Board: b.Rows(), Player: game.White, Depth: depth(1)})

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		var found agent.FindMoveResponse
		require.NoError(t, json.Unmarshal(body, &found))
		require.Equal(t, 2, found.Row, "First of the four equal opening moves")
		require.Equal(t, 4, found.Col)
		require.Equal(t, 1, found.Depth)
		require.Positive(t, found.Nodes)
	})

	t.Run("uses the configured depth by default", func(t *testing.T) {
		b := game.NewBoard()
		want, metric, _ := searcher.NewAlphaBeta(2).FindNextMove(b)

		resp, body := postFindMove(t, srv.URL, agent.FindMoveRequest{Board: b.Rows(), Player: game.Black})

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var found agent.FindMoveResponse
		require.NoError(t, json.Unmarshal(body, &found))
		require.Equal(t, want, game.Move{Row: found.Row, Col: found.Col})
		require.Equal(t, metric.Utility, found.Utility)
		require.Equal(t, 2, found.Depth)
	})

	t.Run("side without moves", func(t *testing.T) {
		rows := []string{
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		}

		resp, body := postFindMove(t, srv.URL, agent.FindMoveRequest{Board: rows, Player: game.White})

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var failure agent.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &failure))
		require.Equal(t, "no legal moves", failure.Error)
	})

	t.Run("rejects bad requests", func(t *testing.T) {
		start := game.NewBoard().Rows()
		cases := map[string]any{
			"malformed json":     []byte(`{"board": [`),
			"short board":        agent.FindMoveRequest{Board: start[:7], Player: game.Black},
			"unknown player":     agent.FindMoveRequest{Board: start, Player: 2},
			"negative depth":     agent.FindMoveRequest{Board: start, Player: game.Black, Depth: depth(-1)},
			"depth above max":    agent.FindMoveRequest{Board: start, Player: game.Black, Depth: depth(4)},
			"unknown evaluation": agent.FindMoveRequest{Board: start, Player: game.Black, Evaluation: "mobility"},
		}
		for name, body := range cases {
			resp, _ := postFindMove(t, srv.URL, body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		}
	})

	t.Run("serves the remote agent", func(t *testing.T) {
		b := game.NewBoard()
		b.Play(game.Move{Row: 2, Col: 3})
		want, _, _ := searcher.NewAlphaBeta(3).FindNextMove(b)

		move, metric, err := agent.NewRemoteAgent(srv.URL, 3, "positional").FindMove(b)

		require.NoError(t, err)
		require.Equal(t, want, move)
		require.Equal(t, 3, metric.Depth)
	})
}

func TestWatch(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testConfig()))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/watch"

	t.Run("streams a full game", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?white=1&black=0", nil)
		require.NoError(t, err)
		defer conn.Close()

		var session string
		var lastBoard []string
		turns := 0
		var result *watchResult
		for result == nil {
			var msg watchMessage
			require.NoError(t, conn.ReadJSON(&msg))
			require.NotEmpty(t, msg.Session)
			if session == "" {
				session = msg.Session
			}
			require.Equal(t, session, msg.Session, "One session per game")

			switch msg.Type {
			case "move":
				require.NotNil(t, msg.Update)
				turns++
				require.Equal(t, turns, msg.Update.Step)
				require.Len(t, msg.Update.Board, game.Size)
				lastBoard = msg.Update.Board
			case "result":
				result = msg.Result
			default:
				require.Failf(t, "unexpected message", "type %q: %s", msg.Type, msg.Error)
			}
		}

		require.Equal(t, turns, result.Moves+result.Passes)
		empty := 0
		for _, row := range lastBoard {
			empty += strings.Count(row, ".")
		}
		require.Equal(t, game.Size*game.Size, result.WhiteDiscs+result.BlackDiscs+empty)

		_, _, err = conn.ReadMessage()
		require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "Stream should close after the result")
	})

	t.Run("rejects depth out of range", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?white=9", nil)

		require.Error(t, err)
		require.NotNil(t, resp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects a non-numeric depth", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?black=deep", nil)

		require.Error(t, err)
		require.NotNil(t, resp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
