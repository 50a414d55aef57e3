package httpadapter

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/solver"
)

// progressEvery is how many search nodes pass between progress frames.
const progressEvery = 2048

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the page and the API share an origin; no cross-site state
	},
}

type liveReq struct {
	Board [][]uint8 `json:"board"`
}

type liveFrame struct {
	Type   string      `json:"type"` // progress | result | unsolvable | error
	Nodes  int         `json:"nodes,omitempty"`
	Board  [9][9]uint8 `json:"board,omitempty"`
	Reason string      `json:"reason,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// handleLive upgrades to a websocket, reads one board, and streams solve
// progress followed by the outcome. It runs its own MRV solver so it can
// attach the progress hook; the configured backend is irrelevant here.
// All writes happen from this goroutine, which is what the websocket
// package requires.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req liveReq
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(liveFrame{Type: "error", Error: "invalid request: " + err.Error()})
		return
	}
	grid, err := gridFromRows(req.Board)
	if err != nil {
		_ = conn.WriteJSON(liveFrame{Type: "error", Error: err.Error()})
		return
	}
	s := solver.NewMRVSolver()
	s.ProgressEvery = progressEvery
	s.Progress = func(nodes int) {
		_ = conn.WriteJSON(liveFrame{Type: "progress", Nodes: nodes})
	}
	in := &domain.Board{Values: grid}
	out, st, err := s.Solve(r.Context(), in)
	switch {
	case err == nil:
		_ = conn.WriteJSON(liveFrame{Type: "result", Nodes: st.Nodes, Board: out.Values})
	case errors.Is(err, solver.ErrConflict):
		_ = conn.WriteJSON(liveFrame{Type: "unsolvable", Nodes: st.Nodes, Reason: "conflict"})
	case errors.Is(err, solver.ErrUnsolvable):
		_ = conn.WriteJSON(liveFrame{Type: "unsolvable", Nodes: st.Nodes, Reason: "exhausted"})
	default:
		_ = conn.WriteJSON(liveFrame{Type: "error", Nodes: st.Nodes, Error: err.Error()})
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
