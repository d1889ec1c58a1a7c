package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatarURL is used when a user has not uploaded an avatar.
const DefaultAvatarURL = "https://api.dicebear.com/9.x/lorelei/svg"

// Avatar is an embedded image reference on the user document.
type Avatar struct {
	URL       string `bson:"url" json:"url"`
	LocalPath string `bson:"localPath" json:"localPath"`
}

// User is an identity record. Password always holds the bcrypt hash, never
// plaintext. RefreshToken mirrors the single live refresh token; the
// *Token/*Expiry pairs hold the sha256 digest and deadline of the one
// outstanding temporary token per flow.
type User struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	Avatar                  Avatar             `bson:"avatar"`
	Username                string             `bson:"username"`
	Email                   string             `bson:"email"`
	Fullname                string             `bson:"fullname,omitempty"`
	Password                string             `bson:"password"`
	IsEmailVerified         bool               `bson:"isEmailVerified"`
	RefreshToken            string             `bson:"refreshToken,omitempty"`
	EmailVerificationToken  string             `bson:"emailVerificationToken,omitempty"`
	EmailVerificationExpiry *time.Time         `bson:"emailVerificationExpiry,omitempty"`
	ForgotPasswordToken     string             `bson:"forgotPasswordToken,omitempty"`
	ForgotPasswordExpiry    *time.Time         `bson:"forgotPasswordExpiry,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt"`
}

// PublicUser is the redacted view returned by the API. The password hash,
// refresh token, and temporary token fields never leave the server.
type PublicUser struct {
	ID              primitive.ObjectID `json:"_id"`
	Avatar          Avatar             `json:"avatar"`
	Username        string             `json:"username"`
	Email           string             `json:"email"`
	Fullname        string             `json:"fullname,omitempty"`
	IsEmailVerified bool               `json:"isEmailVerified"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Public returns the redacted view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Avatar:          u.Avatar,
		Username:        u.Username,
		Email:           u.Email,
		Fullname:        u.Fullname,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
