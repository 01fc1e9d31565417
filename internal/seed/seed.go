// Package seed provides the mock datasets murmur starts with. Fixtures are
// YAML documents embedded in the binary; a user-supplied file with the same
// schema can replace them.
package seed

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/model"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Dataset is everything a session starts with.
type Dataset struct {
	Users   model.Users
	Chats   model.Chats
	Stories model.Stories
}

type fixture struct {
	Users   []userFixture  `yaml:"users"`
	Chats   []chatFixture  `yaml:"chats"`
	Stories []storyFixture `yaml:"stories"`
}

type userFixture struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Email    string    `yaml:"email"`
	Status   string    `yaml:"status"`
	LastSeen string    `yaml:"last_seen"`
	Bio      string    `yaml:"bio"`
	Avatar   string    `yaml:"avatar"`
	Role     string    `yaml:"role"`
	Banned   bool      `yaml:"banned"`
	JoinedAt time.Time `yaml:"joined_at"`
}

type chatFixture struct {
	ID           string           `yaml:"id"`
	Name         string           `yaml:"name"`
	Avatar       string           `yaml:"avatar"`
	Unread       int              `yaml:"unread"`
	Group        bool             `yaml:"group"`
	Participants []string         `yaml:"participants"`
	Messages     []messageFixture `yaml:"messages"`
}

type messageFixture struct {
	ID     string    `yaml:"id"`
	Own    bool      `yaml:"own"`
	From   string    `yaml:"from"`
	Text   string    `yaml:"text"`
	SentAt time.Time `yaml:"sent_at"`
	Read   bool      `yaml:"read"`
}

type storyFixture struct {
	UserID string `yaml:"user_id"`
	Seen   bool   `yaml:"seen"`
}

// Load returns the embedded dataset for a variant.
func Load(variant model.Variant) (Dataset, error) {
	name := fmt.Sprintf("fixtures/%s.yaml", variant)
	data, err := fixtures.ReadFile(name)
	if err != nil {
		return Dataset{}, errors.SeedLoadFailed(name, err)
	}
	return decode(name, data)
}

// LoadFile decodes a fixture from disk.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, errors.SeedLoadFailed(path, err)
	}
	return decode(path, data)
}

func decode(source string, data []byte) (Dataset, error) {
	var fx fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return Dataset{}, errors.SeedLoadFailed(source, err)
	}

	ds := fx.toDataset()
	if err := ds.validate(); err != nil {
		return Dataset{}, errors.SeedInvalid(source, err)
	}

	log := logger.WithComponent("seed")
	for _, c := range ds.Chats {
		if missing := c.Messages.DanglingSenders(ds.Users); len(missing) > 0 {
			log.Warn("chat references unknown senders", "source", source, "chatID", c.ID, "senders", missing)
		}
	}
	log.Debug("dataset loaded", "source", source, "users", len(ds.Users), "chats", len(ds.Chats), "stories", len(ds.Stories))
	return ds, nil
}

func (fx fixture) toDataset() Dataset {
	var ds Dataset
	for _, u := range fx.Users {
		status := model.Status(u.Status)
		if status == "" {
			status = model.StatusOffline
		}
		role := model.Role(u.Role)
		if role == "" {
			role = model.RoleUser
		}
		ds.Users = append(ds.Users, model.User{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Status:   status,
			LastSeen: u.LastSeen,
			Bio:      u.Bio,
			Avatar:   u.Avatar,
			Role:     role,
			Banned:   u.Banned,
			JoinedAt: u.JoinedAt,
		})
	}

	for _, c := range fx.Chats {
		chat := model.Chat{
			ID:           c.ID,
			Name:         c.Name,
			Avatar:       c.Avatar,
			Unread:       c.Unread,
			Group:        c.Group,
			Participants: c.Participants,
		}
		for _, m := range c.Messages {
			sender := model.Peer(m.From)
			if m.Own {
				sender = model.Own()
			}
			chat.Messages = append(chat.Messages, model.Message{
				ID:     m.ID,
				Sender: sender,
				Text:   m.Text,
				SentAt: m.SentAt,
				Read:   m.Read,
			})
		}
		if last, ok := chat.Messages.Last(); ok {
			chat.LastMessage = &last
		}
		ds.Chats = append(ds.Chats, chat)
	}

	for _, s := range fx.Stories {
		ds.Stories = append(ds.Stories, model.Story{UserID: s.UserID, Seen: s.Seen})
	}
	return ds
}

func (ds Dataset) validate() error {
	if err := ds.Users.Validate(); err != nil {
		return err
	}

	chatIDs := make(map[string]bool, len(ds.Chats))
	for _, c := range ds.Chats {
		if c.ID == "" {
			return fmt.Errorf("chat %q has no id", c.Name)
		}
		if chatIDs[c.ID] {
			return fmt.Errorf("duplicate chat id %s", c.ID)
		}
		chatIDs[c.ID] = true
		if c.Unread < 0 {
			return fmt.Errorf("chat %s has negative unread count", c.ID)
		}
		for _, m := range c.Messages {
			if !m.Sender.IsOwn() && m.Sender.UserID == "" {
				return fmt.Errorf("message %s in chat %s has neither own nor from", m.ID, c.ID)
			}
		}
	}

	for _, s := range ds.Stories {
		if _, ok := ds.Users.Find(s.UserID); !ok {
			return fmt.Errorf("story owner %s is not a user", s.UserID)
		}
	}
	return nil
}
