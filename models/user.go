package models

// User is an account record. Email (lowercased) is the partition key;
// profiles, matches, and messages reference the account through UserID.
type User struct {
	Email               string `dynamodbav:"email" json:"email"`
	UserID              string `dynamodbav:"userId" json:"id"`
	Name                string `dynamodbav:"name" json:"name"`
	Password            string `dynamodbav:"password" json:"-"`
	Verified            bool   `dynamodbav:"verified" json:"verified"`
	VerificationToken   string `dynamodbav:"verificationToken,omitempty" json:"-"`
	VerificationExpires string `dynamodbav:"verificationExpires,omitempty" json:"-"`
	CreatedAt           string `dynamodbav:"createdAt" json:"createdAt"`
}

// UsersTable is the DynamoDB table name for accounts
const UsersTable = "Users"
