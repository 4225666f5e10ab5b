package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"loveconnect_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MatchService owns the match lifecycle: request, listing with counterpart
// hydration, respond, and the connections snapshot.
type MatchService struct {
	Dynamo   DynamoAPI
	Profiles *ProfileService
}

func (ms *MatchService) getMatchByPair(ctx context.Context, a, b string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: models.PairKey(a, b)},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match by pair: %w", err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// GetMatchByID looks a match up through the matchId GSI; nil when absent.
func (ms *MatchService) GetMatchByID(ctx context.Context, matchID string) (*models.Match, error) {
	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchIDIndex,
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		}, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query match by id: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(items[0], &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// RequestMatch opens a pending match with the target, or returns the existing
// match for the pair unchanged — including one that was already declined. The
// pairKey condition on the write closes the race between two simultaneous
// first requests.
func (ms *MatchService) RequestMatch(ctx context.Context, requesterID, targetID string) (*models.Match, error) {
	if targetID == "" {
		return nil, &ValidationError{Message: "targetId is required."}
	}
	if targetID == requesterID {
		return nil, &ValidationError{Message: "You cannot request a match with yourself."}
	}

	existing, err := ms.getMatchByPair(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	match := &models.Match{
		PairKey:      models.PairKey(requesterID, targetID),
		MatchID:      uuid.NewString(),
		Participants: []string{requesterID, targetID},
		Status:       models.StatusPending,
		RequestedBy:  requesterID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	err = ms.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "pairKey")
	if errors.Is(err, ErrConditionFailed) {
		// Lost the race to a concurrent request for the same pair.
		log.Printf("⚠️ Concurrent match request for pair %s, returning winner", match.PairKey)
		return ms.getMatchByPair(ctx, requesterID, targetID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("✅ Match requested: %s -> %s (%s)", requesterID, targetID, match.MatchID)
	return match, nil
}

// ListMatches returns every match the viewer participates in, each hydrated
// with the counterpart's profile. A counterpart without a profile hydrates to
// null instead of failing the list.
func (ms *MatchService) ListMatches(ctx context.Context, viewerID string) ([]models.MatchWithProfile, error) {
	items, err := ms.Dynamo.ScanItems(ctx, models.MatchesTable, "contains(participants, :viewer)",
		map[string]types.AttributeValue{
			":viewer": &types.AttributeValueMemberS{Value: viewerID},
		}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to scan matches: %w", err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}

	hydrated := make([]models.MatchWithProfile, 0, len(matches))
	for _, match := range matches {
		var with *models.Profile
		counterpart := match.CounterpartOf(viewerID)
		if counterpart != "" {
			with, err = ms.Profiles.GetProfile(ctx, counterpart)
			if err != nil {
				log.Printf("⚠️ Failed to hydrate profile for %s: %v", counterpart, err)
				with = nil
			}
		}
		hydrated = append(hydrated, models.MatchWithProfile{Match: match, With: with})
	}

	return hydrated, nil
}

// RespondMatch lets a participant accept or decline a match. Unknown actions
// are rejected rather than silently ignored.
func (ms *MatchService) RespondMatch(ctx context.Context, viewerID, matchID, action string) (*models.Match, error) {
	if matchID == "" {
		return nil, &ValidationError{Message: "matchId is required."}
	}
	if action != models.ActionAccept && action != models.ActionDecline {
		return nil, &ValidationError{Message: "action must be accept or decline."}
	}

	match, err := ms.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil || !match.HasParticipant(viewerID) {
		return nil, &NotFoundError{Message: "Match not found."}
	}
	if match.Status != models.StatusPending {
		return nil, &InvalidStateError{Message: "Match has already been resolved."}
	}

	status := models.StatusAccepted
	if action == models.ActionDecline {
		status = models.StatusDeclined
	}

	updated, err := ms.Dynamo.UpdateItem(ctx, models.MatchesTable,
		"SET #status = :status, updatedAt = :updatedAt",
		map[string]types.AttributeValue{
			"pairKey": &types.AttributeValueMemberS{Value: match.PairKey},
		},
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: status},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#status": "status"})
	if err != nil {
		return nil, fmt.Errorf("failed to update match status: %w", err)
	}

	var result models.Match
	if err := attributevalue.UnmarshalMap(updated, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated match: %w", err)
	}

	log.Printf("✅ Match %s %s by %s", matchID, status, viewerID)
	return &result, nil
}

// GetConnections assembles the authoritative connections snapshot for the
// viewer: engagement per counterpart, incoming pending requests, and the last
// message of each accepted match.
func (ms *MatchService) GetConnections(ctx context.Context, viewerID string) (*models.ConnectionsSnapshot, error) {
	matches, err := ms.ListMatches(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	snapshot := &models.ConnectionsSnapshot{
		Engagements:      map[string]models.Connection{},
		IncomingRequests: []models.IncomingRequest{},
	}

	for _, match := range matches {
		counterpart := match.CounterpartOf(viewerID)
		if counterpart == "" {
			continue
		}

		conn := models.Connection{
			MatchID:     match.MatchID,
			Status:      match.Status,
			RequestedBy: match.RequestedBy,
			With:        match.With,
		}

		if match.IsAccepted() {
			conn.LastMessage = ms.lastMessage(ctx, match.MatchID)
		}
		snapshot.Engagements[counterpart] = conn

		if match.Status == models.StatusPending && match.RequestedBy != viewerID {
			name := "Someone"
			if match.With != nil && match.With.Name != "" {
				name = match.With.Name
			}
			snapshot.IncomingRequests = append(snapshot.IncomingRequests, models.IncomingRequest{
				MatchID: match.MatchID,
				From:    match.With,
				Message: fmt.Sprintf("%s wants to connect.", name),
			})
		}
	}

	return snapshot, nil
}

func (ms *MatchService) lastMessage(ctx context.Context, matchID string) *models.Message {
	items, err := ms.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable,
		"#matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		map[string]string{"#matchId": "matchId"},
		1, false)
	if err != nil || len(items) == 0 {
		return nil
	}

	var message models.Message
	if err := attributevalue.UnmarshalMap(items[0], &message); err != nil {
		log.Printf("⚠️ Failed to unmarshal last message for %s: %v", matchID, err)
		return nil
	}
	return &message
}
