package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"loveconnect_server/models"
	"loveconnect_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationValidity = time.Hour
	loginTokenValidity   = time.Hour
	bcryptCost           = 10
)

// UserService handles the account lifecycle: signup, email verification and
// login. Verification links are delivered through the injected EmailSender.
type UserService struct {
	Dynamo    DynamoAPI
	Email     EmailSender
	JWTSecret []byte
	ClientURL string
}

func (us *UserService) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}

	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// Signup creates (or refreshes) an unverified account and emails a one-hour
// verification link. A prior unverified signup for the same email is reused;
// a verified one is rejected.
func (us *UserService) Signup(ctx context.Context, name, email, password, confirmPassword string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: "Name, email, and password are required."}
	}
	if confirmPassword != "" && password != confirmPassword {
		return nil, &ValidationError{Message: "Passwords do not match."}
	}

	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := us.getUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Verified {
		return nil, &ValidationError{Message: "User already exists. Please log in."}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, hashedToken, err := utils.GenerateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := existing
	if user == nil {
		user = &models.User{
			Email:     email,
			UserID:    uuid.NewString(),
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
	}
	user.Name = name
	user.Password = string(hashedPassword)
	user.Verified = false
	user.VerificationToken = hashedToken
	user.VerificationExpires = time.Now().Add(verificationValidity).UTC().Format(time.RFC3339)

	if err := us.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	verifyURL := fmt.Sprintf("%s/verify?token=%s", us.ClientURL, token)
	html := fmt.Sprintf(
		`<p>Welcome to LoveConnect, %s!</p><p>Click the button below to verify your email address:</p><p><a href="%s" style="padding:10px 20px;background:#ec4899;color:white;border-radius:8px;text-decoration:none">Verify email</a></p><p>If you did not create this account, please ignore this email.</p>`,
		name, verifyURL,
	)
	if err := us.Email.Send(ctx, email, "Verify your LoveConnect account", html); err != nil {
		return nil, &UpstreamError{Message: "Unable to send verification email.", Err: err}
	}

	log.Printf("✅ Verification email sent to %s", email)
	return user, nil
}

// VerifyEmail consumes a verification token: the account becomes verified and
// the token is cleared, so a second use of the same link fails.
func (us *UserService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return &ValidationError{Message: "Verification token is missing."}
	}

	hashed := utils.HashToken(token)
	items, err := us.Dynamo.ScanItems(ctx, models.UsersTable, "verificationToken = :token",
		map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: hashed},
		}, nil, 0)
	if err != nil {
		return fmt.Errorf("failed to look up verification token: %w", err)
	}
	if len(items) == 0 {
		return &ValidationError{Message: "Invalid or expired verification link."}
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return fmt.Errorf("failed to unmarshal user: %w", err)
	}

	expires, err := time.Parse(time.RFC3339, user.VerificationExpires)
	if err != nil || time.Now().After(expires) {
		return &ValidationError{Message: "Invalid or expired verification link."}
	}

	user.Verified = true
	user.VerificationToken = ""
	user.VerificationExpires = ""
	if err := us.Dynamo.PutItem(ctx, models.UsersTable, &user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	log.Printf("✅ Email verified for %s", user.Email)
	return nil
}

// Login verifies credentials and issues a bearer token for a verified account.
func (us *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, &ValidationError{Message: "Email and password are required."}
	}

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := us.getUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, &ValidationError{Message: "User not found. Please sign up."}
	}
	if !user.Verified {
		return "", nil, &UnauthorizedError{Message: "Please verify your email before logging in."}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, &ValidationError{Message: "Incorrect password."}
	}

	token, err := utils.GenerateToken(user.UserID, user.Email, us.JWTSecret, loginTokenValidity)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}
