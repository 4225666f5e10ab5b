package models

// Connection is one entry of the connections snapshot: the viewer's
// relationship with a single counterpart.
type Connection struct {
	MatchID     string   `json:"matchId"`
	Status      string   `json:"status"`
	RequestedBy string   `json:"requestedBy"`
	With        *Profile `json:"with"`
	LastMessage *Message `json:"lastMessage,omitempty"`
}

// IncomingRequest is a pending match someone else opened with the viewer.
type IncomingRequest struct {
	MatchID string   `json:"matchId"`
	From    *Profile `json:"from"`
	Message string   `json:"message"`
}

// ConnectionsSnapshot is the authoritative server copy of the connection
// state the web client previously kept as an ad-hoc local cache. Engagements
// is keyed by counterpart userId; on any conflict this response wins.
type ConnectionsSnapshot struct {
	Engagements      map[string]Connection `json:"engagements"`
	IncomingRequests []IncomingRequest     `json:"incomingRequests"`
}
