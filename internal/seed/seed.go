package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"yatube/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var groupSeeds = []struct {
	Title       string
	Slug        string
	Description string
}{
	{"Technology", "technology", "Posts about software, hardware and everything in between."},
	{"Books", "books", "What are you reading this week?"},
	{"Travel", "travel", "Trip reports, photos and recommendations."},
	{"Cooking", "cooking", "Recipes, kitchen experiments and food talk."},
	{"Music", "music", "New releases, old favorites and everything that sounds good."},
	{"Cinema", "cinema", "Films worth watching and films worth skipping."},
	{"Science", "science", "Discoveries, papers and popular science."},
	{"Sports", "sports", "Match reports and training logs."},
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users, err := createUsers(db, factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	groups, err := createOrGetGroups(db)
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("✓ %d groups available", len(groups))

	posts, err := createPosts(factory, users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, err := createComments(factory, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	follows, err := createFollows(db, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, follows, posts, "groups", users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include some specific users for consistency if cleaning
	if count >= 3 {
		baseUsers := []string{"leo", "anna", "test"}
		for _, u := range baseUsers {
			user := &models.User{
				Username: u,
				Email:    fmt.Sprintf("%s@example.com", u),
				Password: string(hashedPassword),
				Bio:      "One of the first authors here.",
			}
			if err := db.Create(user).Error; err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser(func(u *models.User) {
			u.Password = string(hashedPassword)
		})
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createOrGetGroups(db *gorm.DB) ([]*models.Group, error) {
	groups := make([]*models.Group, 0, len(groupSeeds))

	for _, g := range groupSeeds {
		var group models.Group
		err := db.Where(models.Group{Slug: g.Slug}).
			Attrs(models.Group{Title: g.Title, Description: g.Description}).
			FirstOrCreate(&group).Error
		if err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}
	return groups, nil
}

func createPosts(factory *Factory, users []*models.User, groups []*models.Group, count int) ([]*models.Post, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]*models.Post, 0, count)

	pending := make([]*models.Post, 0, 500)
	flush := func() error {
		if err := factory.CreatePostsBatch(pending); err != nil {
			return err
		}
		posts = append(posts, pending...)
		pending = pending[:0]
		return nil
	}

	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]

		// roughly two thirds of posts belong to a group
		var group *models.Group
		if r.Intn(3) != 0 {
			group = groups[r.Intn(len(groups))]
		}

		pending = append(pending, factory.BuildPost(author, group))
		if len(pending) == 500 {
			if err := flush(); err != nil {
				return nil, err
			}
			log.Printf("Created %d posts...", len(posts))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return posts, nil
}

func createComments(factory *Factory, users []*models.User, posts []*models.Post) (int, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, post := range posts {
		for n := r.Intn(4); n > 0; n-- {
			author := users[r.Intn(len(users))]
			if _, err := factory.CreateComment(author, post); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createFollows(db *gorm.DB, users []*models.User) (int, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, user := range users {
		for n := r.Intn(5); n > 0; n-- {
			author := users[r.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			follow := models.Follow{UserID: user.ID, AuthorID: author.ID}
			// duplicate edges are expected with random picks, skip them quietly
			if err := db.Where(follow).FirstOrCreate(&follow).Error; err != nil {
				continue
			}
			created++
		}
	}
	return created, nil
}
