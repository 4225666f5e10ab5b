package models

// Message belongs to exactly one match. MatchID is the partition key and
// CreatedAt (RFC3339Nano) the sort key, so query order is creation order.
type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Text      string `dynamodbav:"text" json:"text"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
