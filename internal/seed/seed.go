package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Seed populates the database with demo data: users, groups, posts, comments,
// and a follow mesh.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database: %d users, %d groups, %d posts", opts.NumUsers, opts.NumGroups, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	factory := NewFactory(db, opts)

	users, err := seedUsers(factory, opts)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	groups, err := seedGroups(factory, opts)
	if err != nil {
		return fmt.Errorf("failed to seed groups: %w", err)
	}

	posts, err := seedPosts(factory, users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}
	if err := seedComments(factory, users, posts, opts.NumComments); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}
	if err := seedFollows(factory, users, opts.NumFollows); err != nil {
		return fmt.Errorf("failed to seed follows: %w", err)
	}

	log.Printf("Seeding complete: %d users, %d groups, %d posts", len(users), len(groups), len(posts))
	return nil
}

func seedUsers(factory *Factory, opts Options) ([]*models.User, error) {
	var users []*models.User

	if opts.PresetPath != "" {
		preset, err := LoadPreset(opts.PresetPath)
		if err != nil {
			return nil, err
		}
		for _, p := range preset.Users {
			user, err := factory.CreateUser(func(u *models.User) {
				u.Username = p.Username
				u.Email = p.Email
				u.Bio = p.Bio
			})
			if err != nil {
				return nil, err
			}
			users = append(users, user)
		}
	}

	for len(users) < opts.NumUsers {
		user, err := factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed")
	}
	return users, nil
}

func seedGroups(factory *Factory, opts Options) ([]*models.Group, error) {
	var groups []*models.Group

	if opts.PresetPath != "" {
		preset, err := LoadPreset(opts.PresetPath)
		if err != nil {
			return nil, err
		}
		for _, p := range preset.Groups {
			group, err := factory.CreateGroup(func(g *models.Group) {
				g.Title = p.Title
				g.Slug = p.Slug
				g.Description = p.Description
			})
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}
	}

	for len(groups) < opts.NumGroups {
		group, err := factory.CreateGroup()
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func seedPosts(factory *Factory, users []*models.User, groups []*models.Group, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[factory.rng.Intn(len(users))]
		var group *models.Group
		// roughly a third of posts go ungrouped
		if len(groups) > 0 && factory.rng.Intn(3) != 0 {
			group = groups[factory.rng.Intn(len(groups))]
		}
		posts = append(posts, factory.BuildPost(author, group))
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func seedComments(factory *Factory, users []*models.User, posts []*models.Post, n int) error {
	if len(posts) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		author := users[factory.rng.Intn(len(users))]
		post := posts[factory.rng.Intn(len(posts))]
		if _, err := factory.CreateComment(author, post); err != nil {
			return err
		}
	}
	return nil
}

func seedFollows(factory *Factory, users []*models.User, n int) error {
	if len(users) < 2 {
		return nil
	}
	for i := 0; i < n; i++ {
		user := users[factory.rng.Intn(len(users))]
		author := users[factory.rng.Intn(len(users))]
		if err := factory.CreateFollow(user, author); err != nil {
			return err
		}
	}
	return nil
}

// clearData removes seeded rows. Order matters for foreign keys even though
// cascades would handle most of it.
func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
