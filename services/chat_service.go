package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"loveconnect_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DefaultMessageLimit caps a single message page.
const DefaultMessageLimit = 50

// ChatService appends and reads messages, gating both on the match.
type ChatService struct {
	Dynamo  DynamoAPI
	Matches *MatchService
}

// SendMessage appends a message to an accepted match the sender participates
// in. Anything else — no such match, wrong status, outsider sender — is an
// invalid state.
func (cs *ChatService) SendMessage(ctx context.Context, senderID, matchID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "Message text is required."}
	}

	match, err := cs.Matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil || !match.HasParticipant(senderID) || !match.IsAccepted() {
		return nil, &InvalidStateError{Message: "Messaging requires an accepted match."}
	}

	message := &models.Message{
		MatchID:   matchID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		MessageID: uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
	}

	if err := cs.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	log.Printf("📩 Message stored for match %s", matchID)
	return message, nil
}

// GetMessages returns a match's messages in creation order. Only a
// participant may read them; there is no status gate on reads. The limit is a
// tail window: the newest messages win, so a fresh send is always visible on
// the next read.
func (cs *ChatService) GetMessages(ctx context.Context, viewerID, matchID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	match, err := cs.Matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil || !match.HasParticipant(viewerID) {
		return nil, &NotFoundError{Message: "Match not found."}
	}

	items, err := cs.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable,
		"#matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		map[string]string{"#matchId": "matchId"},
		int32(limit), false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}

	// The query ran newest-first to pick the window; flip back to creation
	// order for the client.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
