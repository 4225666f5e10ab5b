package services

import (
	"context"
	"testing"

	"loveconnect_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchFixture() (*MatchService, *ProfileService, *fakeDynamo) {
	fake := newFakeDynamo()
	profiles := NewProfileService(fake)
	matches := &MatchService{Dynamo: fake, Profiles: profiles}
	return matches, profiles, fake
}

func TestRequestMatchCreatesPending(t *testing.T) {
	ms, _, _ := newMatchFixture()

	match, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, match.Status)
	assert.Equal(t, "alice", match.RequestedBy)
	assert.Equal(t, []string{"alice", "bob"}, match.Participants)
	assert.NotEmpty(t, match.MatchID)
	assert.Equal(t, models.PairKey("bob", "alice"), match.PairKey)
}

func TestRequestMatchIsSymmetric(t *testing.T) {
	ms, _, _ := newMatchFixture()

	first, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	second, err := ms.RequestMatch(context.Background(), "bob", "alice")
	require.NoError(t, err)

	assert.Equal(t, first.MatchID, second.MatchID)
	assert.Equal(t, "alice", second.RequestedBy)
	assert.Equal(t, models.StatusPending, second.Status)
}

func TestRequestMatchIsIdempotent(t *testing.T) {
	ms, _, _ := newMatchFixture()

	first, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	second, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, first.MatchID, second.MatchID)

	matches, err := ms.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRequestMatchAfterDeclineReturnsDeclined(t *testing.T) {
	ms, _, _ := newMatchFixture()

	match, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	_, err = ms.RespondMatch(context.Background(), "bob", match.MatchID, models.ActionDecline)
	require.NoError(t, err)

	again, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, match.MatchID, again.MatchID)
	assert.Equal(t, models.StatusDeclined, again.Status)
}

func TestRequestMatchValidation(t *testing.T) {
	ms, _, _ := newMatchFixture()

	var validationErr *ValidationError

	_, err := ms.RequestMatch(context.Background(), "alice", "")
	assert.ErrorAs(t, err, &validationErr)

	_, err = ms.RequestMatch(context.Background(), "alice", "alice")
	assert.ErrorAs(t, err, &validationErr)
}

func TestRespondMatchAccept(t *testing.T) {
	ms, _, _ := newMatchFixture()

	match, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	updated, err := ms.RespondMatch(context.Background(), "bob", match.MatchID, models.ActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.NotEmpty(t, updated.UpdatedAt)

	reloaded, err := ms.GetMatchByID(context.Background(), match.MatchID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, reloaded.Status)
}

func TestRespondMatchDecline(t *testing.T) {
	ms, _, _ := newMatchFixture()

	match, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	updated, err := ms.RespondMatch(context.Background(), "bob", match.MatchID, models.ActionDecline)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, updated.Status)
}

func TestRespondMatchRejectsUnknownAction(t *testing.T) {
	ms, _, _ := newMatchFixture()

	match, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	var validationErr *ValidationError
	_, err = ms.RespondMatch(context.Background(), "bob", match.MatchID, "block")
	assert.ErrorAs(t, err, &validationErr)

	reloaded, err := ms.GetMatchByID(context.Background(), match.MatchID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reloaded.Status)
}

func TestRespondMatchRejectsResolvedMatch(t *testing.T) {
	ms, _, _ := newMatchFixture()
	ctx := context.Background()

	accepted, err := ms.RequestMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = ms.RespondMatch(ctx, "bob", accepted.MatchID, models.ActionAccept)
	require.NoError(t, err)

	var stateErr *InvalidStateError
	_, err = ms.RespondMatch(ctx, "bob", accepted.MatchID, models.ActionDecline)
	assert.ErrorAs(t, err, &stateErr)

	// A declined match is just as final.
	declined, err := ms.RequestMatch(ctx, "alice", "carol")
	require.NoError(t, err)
	_, err = ms.RespondMatch(ctx, "carol", declined.MatchID, models.ActionDecline)
	require.NoError(t, err)

	_, err = ms.RespondMatch(ctx, "carol", declined.MatchID, models.ActionAccept)
	assert.ErrorAs(t, err, &stateErr)

	reloaded, err := ms.GetMatchByID(ctx, declined.MatchID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, reloaded.Status)
}

func TestRespondMatchNotFound(t *testing.T) {
	ms, _, _ := newMatchFixture()

	match, err := ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	var notFoundErr *NotFoundError

	// An outsider cannot respond, and cannot learn the match exists.
	_, err = ms.RespondMatch(context.Background(), "mallory", match.MatchID, models.ActionAccept)
	assert.ErrorAs(t, err, &notFoundErr)

	_, err = ms.RespondMatch(context.Background(), "alice", "no-such-match", models.ActionAccept)
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListMatchesHydratesCounterpart(t *testing.T) {
	ms, profiles, _ := newMatchFixture()

	_, err := profiles.SaveProfile(context.Background(), "bob", models.Profile{Name: "Bob", Age: 30})
	require.NoError(t, err)

	_, err = ms.RequestMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)
	_, err = ms.RequestMatch(context.Background(), "alice", "carol")
	require.NoError(t, err)

	matches, err := ms.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	byCounterpart := map[string]models.MatchWithProfile{}
	for _, m := range matches {
		byCounterpart[m.CounterpartOf("alice")] = m
	}

	require.NotNil(t, byCounterpart["bob"].With)
	assert.Equal(t, "Bob", byCounterpart["bob"].With.Name)
	// Carol never created a profile, the match still lists.
	assert.Nil(t, byCounterpart["carol"].With)
}

func TestGetConnectionsSnapshot(t *testing.T) {
	ms, profiles, _ := newMatchFixture()
	ctx := context.Background()

	_, err := profiles.SaveProfile(ctx, "bob", models.Profile{Name: "Bob"})
	require.NoError(t, err)

	accepted, err := ms.RequestMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = ms.RespondMatch(ctx, "bob", accepted.MatchID, models.ActionAccept)
	require.NoError(t, err)

	chat := &ChatService{Dynamo: ms.Dynamo, Matches: ms}
	_, err = chat.SendMessage(ctx, "alice", accepted.MatchID, "hey!")
	require.NoError(t, err)
	last, err := chat.SendMessage(ctx, "bob", accepted.MatchID, "hi back")
	require.NoError(t, err)

	// A match between two other users never shows up in alice's snapshot.
	_, err = ms.RequestMatch(ctx, "bob", "carol")
	require.NoError(t, err)

	snapshot, err := ms.GetConnections(ctx, "alice")
	require.NoError(t, err)

	conn, ok := snapshot.Engagements["bob"]
	require.True(t, ok)
	assert.Equal(t, models.StatusAccepted, conn.Status)
	require.NotNil(t, conn.LastMessage)
	assert.Equal(t, last.Text, conn.LastMessage.Text)
	assert.Empty(t, snapshot.IncomingRequests)
}

func TestGetConnectionsIncomingRequests(t *testing.T) {
	ms, profiles, _ := newMatchFixture()
	ctx := context.Background()

	_, err := profiles.SaveProfile(ctx, "bob", models.Profile{Name: "Bob"})
	require.NoError(t, err)

	match, err := ms.RequestMatch(ctx, "bob", "alice")
	require.NoError(t, err)

	snapshot, err := ms.GetConnections(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, snapshot.IncomingRequests, 1)
	incoming := snapshot.IncomingRequests[0]
	assert.Equal(t, match.MatchID, incoming.MatchID)
	assert.Equal(t, "Bob wants to connect.", incoming.Message)

	// The requester side sees no incoming request for its own ask.
	requesterView, err := ms.GetConnections(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, requesterView.IncomingRequests)
}
