// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record of an authenticated person. It is owned
// exclusively by the session manager once authenticated and is nil whenever
// the app is signed out.
type User struct {
	ID        string    // Opaque identifier assigned by the backend.
	Email     string    // The user's primary contact email, used as the login identifier.
	Name      string    // The user's display name.
	Phone     string    // Optional phone number, empty when not provided.
	AvatarURL string    // Optional avatar image URL.
	Language  Language  // The language the account was created with.
	CreatedAt time.Time // Timestamp of when this account was created.
}

// UserUpdate carries a partial profile update. Nil fields are left untouched,
// mirroring how the profile screen submits only the fields that changed.
type UserUpdate struct {
	Name      *string
	Phone     *string
	AvatarURL *string
	Language  *Language
}

// Apply merges the update into a copy of the given user and returns it.
func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.AvatarURL != nil {
		user.AvatarURL = *u.AvatarURL
	}
	if u.Language != nil && u.Language.IsValid() {
		user.Language = *u.Language
	}

	return user
}
