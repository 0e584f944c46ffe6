package agent

// FindMoveRequest is the body of POST /findmove.
type FindMoveRequest struct {
	Board      []string `json:"board"`
	Player     int      `json:"player"`
	Depth      *int     `json:"depth,omitempty"`
	Evaluation string   `json:"evaluation,omitempty"`
}

type FindMoveResponse struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Utility    int     `json:"utility"`
	Depth      int     `json:"depth"`
	Nodes      int     `json:"nodes"`
	Cutoffs    int     `json:"cutoffs"`
	DurationMs float64 `json:"duration_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
