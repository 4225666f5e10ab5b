package models

// Match is a consent record between exactly two accounts. PairKey is the
// partition key: the participant ids sorted and joined, so the table itself
// enforces at most one match per unordered pair.
type Match struct {
	PairKey      string   `dynamodbav:"pairKey" json:"-"`
	MatchID      string   `dynamodbav:"matchId" json:"matchId"`
	Participants []string `dynamodbav:"participants" json:"participants"` // requester first
	Status       string   `dynamodbav:"status" json:"status"`
	RequestedBy  string   `dynamodbav:"requestedBy" json:"requestedBy"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt    string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// MatchIDIndex is the GSI used to look a match up by its id
const MatchIDIndex = "matchId-index"

// PairKey builds the order-independent partition key for two participants.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}

func (m *Match) HasParticipant(userID string) bool {
	for _, p := range m.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// CounterpartOf returns the other participant, or "" when userID is not part
// of the match.
func (m *Match) CounterpartOf(userID string) string {
	if !m.HasParticipant(userID) {
		return ""
	}
	for _, p := range m.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

func (m *Match) IsAccepted() bool {
	return m.Status == StatusAccepted
}

// MatchWithProfile is a match hydrated with the counterpart's profile for the
// viewer. With is null when the counterpart never created a profile.
type MatchWithProfile struct {
	Match
	With *Profile `json:"with"`
}
