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
	"github.com/go-playground/validator/v10"
)

// DiscoverLimit caps the discovery pool returned to a viewer.
const DiscoverLimit = 50

// ProfileService owns profile reads and the upsert used by both profile
// creation and edit.
type ProfileService struct {
	Dynamo   DynamoAPI
	Validate *validator.Validate
}

func NewProfileService(dynamo DynamoAPI) *ProfileService {
	return &ProfileService{
		Dynamo:   dynamo,
		Validate: validator.New(),
	}
}

// SaveProfile upserts the viewer's profile. The owner always comes from the
// authenticated viewer, never from the request body.
func (ps *ProfileService) SaveProfile(ctx context.Context, userID string, profile models.Profile) (*models.Profile, error) {
	profile.UserID = userID

	if err := ps.Validate.Struct(profile); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid profile: %v", err)}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	existing, err := ps.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if !profile.Location.IsSet() {
		profile.Location = models.NewGeoPoint(0, 0)
	}

	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("✅ Profile saved for userId: %s", userID)
	return &profile, nil
}

// GetProfile returns a profile by owner id, or nil when none exists.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	applyCompatibilityDefault(&profile)
	return &profile, nil
}

// GetDiscoverProfiles returns the discovery pool for a viewer: everyone but
// the viewer, capped at DiscoverLimit.
func (ps *ProfileService) GetDiscoverProfiles(ctx context.Context, viewerID string) ([]models.Profile, error) {
	items, err := ps.Dynamo.ScanItems(ctx, models.ProfilesTable, "userId <> :viewer",
		map[string]types.AttributeValue{
			":viewer": &types.AttributeValueMemberS{Value: viewerID},
		}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	var profiles []models.Profile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}

	if len(profiles) > DiscoverLimit {
		profiles = profiles[:DiscoverLimit]
	}
	for i := range profiles {
		applyCompatibilityDefault(&profiles[i])
	}

	log.Printf("✅ Discovery pool for %s: %d profiles", viewerID, len(profiles))
	return profiles, nil
}

// applyCompatibilityDefault fills in the assumed score for profiles that
// never had one supplied.
func applyCompatibilityDefault(p *models.Profile) {
	if p.Compatibility == 0 {
		p.Compatibility = models.DefaultCompatibility
	}
}
