package db

import (
	"time"
)

// Swipe action values stored in user_actions.
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// User is the authentication identity. Profile data lives in Profile,
// keyed by UserID.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Profile is a developer's public profile, one row per user.
//
// Goal drives the matchmaking priority tiers; Complete gates whether the
// profile can surface in anyone's feed at all.
//
// Index idx_goal_complete(goal, complete) serves the tiered feed query
// (goal IN (...) AND complete = true).
type Profile struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"size:128"`
	Bio         string    `gorm:"type:text"`
	Role        string    `gorm:"size:128"`
	Goal        string    `gorm:"size:32;index:idx_goal_complete,priority:1"`
	Complete    bool      `gorm:"default:false;index:idx_goal_complete,priority:2"`
	Location    string    `gorm:"size:128"`
	Company     string    `gorm:"size:128"`
	Position    string    `gorm:"size:128"`
	AvatarURL   string    `gorm:"size:512"`
	GithubURL   string    `gorm:"size:512"`
	LinkedinURL string    `gorm:"size:512"`
	WebsiteURL  string    `gorm:"size:512"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Skills         []Skill         `gorm:"foreignKey:ProfileID"`
	Education      *Education      `gorm:"foreignKey:ProfileID"`
	WorkExperience *WorkExperience `gorm:"foreignKey:ProfileID"`
}

// Skill is a named skill on a profile. Level is free-form in the store
// and normalized at the transformer boundary.
type Skill struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID uint64 `gorm:"index;not null"`
	Name      string `gorm:"size:64;not null"`
	Level     string `gorm:"size:16"`
}

// Education is the zero-or-one education entry joined to a profile.
type Education struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID uint64 `gorm:"index;not null"`
	School    string `gorm:"size:128"`
	Degree    string `gorm:"size:128"`
	Field     string `gorm:"size:128"`
}

// WorkExperience is the zero-or-one work-history entry joined to a profile.
// Experience-in-years is derived from StartDate/EndDate/Current, never stored.
type WorkExperience struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID uint64 `gorm:"index;not null"`
	Company   string `gorm:"size:128"`
	Position  string `gorm:"size:128"`
	StartDate *time.Time
	EndDate   *time.Time
	Current   bool `gorm:"default:false"`
}

// UserAction records a swipe (like or pass) by UserID on TargetUserID.
//
// Composite PK (UserID, TargetUserID): one row per pair, a later swipe on
// the same target overwrites the action. Rows are never deleted in this
// flow; both likes and passes keep the target out of the user's feed.
type UserAction struct {
	UserID       uint64    `gorm:"primaryKey"`
	TargetUserID uint64    `gorm:"primaryKey"`
	Action       string    `gorm:"size:8;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Match is a symmetric pair of users with mutual likes. Either column may
// hold either user, so lookups OR across both.
//
// Index idx_match_created(created_at DESC, id) serves the paginated
// "my matches" listing.
type Match struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID1   uint64    `gorm:"column:user_id_1;index;not null"`
	UserID2   uint64    `gorm:"column:user_id_2;index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_match_created,sort:desc"`
}
