package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// tagVocabulary is the fixed set of tag names seeded for development.
var tagVocabulary = []string{
	"go", "databases", "web", "testing", "deployment",
	"performance", "tutorial", "opinion", "news", "meta",
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	r       *rand.Rand
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		r:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll wipes all seeded tables. Join rows go first to keep foreign keys
// satisfied on stores that enforce them.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.PostTag{},
		&models.Post{},
		&models.Tag{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// Run seeds users, posts, the tag vocabulary, and random post/tag links.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 40
	}

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	tags := make([]*models.Tag, 0, len(tagVocabulary))
	for _, name := range tagVocabulary {
		tag, err := s.factory.CreateTag(name)
		if err != nil {
			return fmt.Errorf("seed tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	for i := 0; i < opts.NumPosts; i++ {
		user := users[s.r.Intn(len(users))]
		post, err := s.factory.CreatePost(user)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}

		// Zero to three tags per post.
		picked := s.pickTags(tags, s.r.Intn(4))
		if err := s.factory.AttachTags(post, picked); err != nil {
			return fmt.Errorf("attach tags: %w", err)
		}
	}

	log.Printf("Seeded %d users, %d posts, %d tags", opts.NumUsers, opts.NumPosts, len(tags))
	return nil
}

func (s *Seeder) pickTags(tags []*models.Tag, n int) []*models.Tag {
	if n >= len(tags) {
		n = len(tags)
	}
	idx := s.r.Perm(len(tags))[:n]
	picked := make([]*models.Tag, 0, n)
	for _, i := range idx {
		picked = append(picked, tags[i])
	}
	return picked
}
