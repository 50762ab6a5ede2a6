package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedGoals = []string{"recruiting", "searching", "investing", "other"}

var seedRoles = []string{
	"Backend Engineer", "Frontend Engineer", "Full-Stack Developer",
	"DevOps Engineer", "Mobile Developer",
}

var seedLocations = []string{
	"London, UK", "Berlin, Germany", "Amsterdam, Netherlands",
	"Lisbon, Portugal", "Remote",
}

var seedSkills = []string{
	"Go", "TypeScript", "Kubernetes", "PostgreSQL", "React",
	"gRPC", "Terraform", "Swift", "Rust", "Redis",
}

var seedLevels = []string{"Beginner", "Intermediate", "Advanced", "Expert"}

// SeedDemoData resets the database and populates it with demo developers,
// swipe actions, and a handful of matches.
//
// Behavior:
//  1. Clears all feed-related tables.
//  2. Creates 20 users with hashed passwords and complete profiles spread
//     across the four goals (plus two incomplete profiles that must never
//     surface in a feed).
//  3. Generates ~100 swipe actions (~70% likes) and records a match for
//     every mutual like pair it produces.
//
// Works on both Postgres and SQLite.
func SeedDemoData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, table := range []string{"matches", "user_actions", "skills", "educations", "work_experiences", "profiles", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	const userCount = 20
	for i := 1; i <= userCount; i++ {
		user := User{
			Username:     fmt.Sprintf("dev%d", i),
			Email:        fmt.Sprintf("dev%d@example.com", i),
			PasswordHash: string(hash),
			Active:       true,
			LastLoginAt:  time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		start := time.Now().AddDate(-(r.Intn(10) + 1), -r.Intn(12), 0)
		profile := Profile{
			UserID:   user.ID,
			Name:     fmt.Sprintf("Developer %d", i),
			Bio:      "Building things and looking for interesting people to build with.",
			Role:     seedRoles[r.Intn(len(seedRoles))],
			Goal:     seedGoals[i%len(seedGoals)],
			Complete: i <= userCount-2, // last two stay incomplete
			Location: seedLocations[r.Intn(len(seedLocations))],
			Company:  fmt.Sprintf("Company %d", r.Intn(10)+1),
			Position: "Engineer",
			WorkExperience: &WorkExperience{
				Company:   fmt.Sprintf("Company %d", r.Intn(10)+1),
				Position:  "Engineer",
				StartDate: &start,
				Current:   true,
			},
			Education: &Education{
				School: "State University",
				Degree: "BSc",
				Field:  "Computer Science",
			},
		}
		for j := 0; j < r.Intn(4)+2; j++ {
			profile.Skills = append(profile.Skills, Skill{
				Name:  seedSkills[r.Intn(len(seedSkills))],
				Level: seedLevels[r.Intn(len(seedLevels))],
			})
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Printf("Seeded %d users with profiles.", userCount)

	// Swipes: each user acts on a handful of others, ~70% likes.
	// Mutual likes produce a match row.
	var users []User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load seeded users: %w", err)
	}

	liked := make(map[[2]uint64]bool)
	for _, u := range users {
		for j := 0; j < 5; j++ {
			target := users[r.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}

			action := ActionPass
			if r.Intn(100) < 70 {
				action = ActionLike
			}

			row := UserAction{UserID: u.ID, TargetUserID: target.ID, Action: action}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"action", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to seed action: %w", err)
			}

			if action == ActionLike {
				liked[[2]uint64{u.ID, target.ID}] = true
				if liked[[2]uint64{target.ID, u.ID}] {
					match := Match{UserID1: target.ID, UserID2: u.ID}
					if err := db.Create(&match).Error; err != nil {
						return fmt.Errorf("failed to seed match: %w", err)
					}
				}
			}
		}
	}

	return nil
}
