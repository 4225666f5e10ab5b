package models

// Photo references an externally hosted image.
type Photo struct {
	URL      string `dynamodbav:"url" json:"url"`
	PublicID string `dynamodbav:"publicId" json:"publicId"`
}

// Profile defines the structure for user profiles. UserID is the partition
// key, so an account can never own more than one profile.
type Profile struct {
	UserID        string   `dynamodbav:"userId" json:"userId"`
	Email         string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Name          string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Age           int      `dynamodbav:"age,omitempty" json:"age,omitempty" validate:"omitempty,gte=18,lte=100"`
	City          string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Pronouns      string   `dynamodbav:"pronouns,omitempty" json:"pronouns,omitempty"`
	Bio           string   `dynamodbav:"bio,omitempty" json:"bio,omitempty" validate:"max=500"`
	Interests     []string `dynamodbav:"interests,omitempty" json:"interests,omitempty" validate:"max=10"`
	Photos        []Photo  `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	LookingFor    string   `dynamodbav:"lookingFor,omitempty" json:"lookingFor,omitempty"`
	Height        string   `dynamodbav:"height,omitempty" json:"height,omitempty"`
	Education     string   `dynamodbav:"education,omitempty" json:"education,omitempty"`
	Occupation    string   `dynamodbav:"occupation,omitempty" json:"occupation,omitempty"`
	Location      GeoPoint `dynamodbav:"location" json:"location"`
	Compatibility int      `dynamodbav:"compatibility,omitempty" json:"compatibility,omitempty"`
	IsOnline      bool     `dynamodbav:"isOnline,omitempty" json:"isOnline"`
	DistanceKm    *int     `dynamodbav:"-" json:"distanceKm,omitempty"` // Computed against the viewer, never stored
	CreatedAt     string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"

// DefaultCompatibility is assumed when a profile carries no supplied score.
const DefaultCompatibility = 90
