package main

import (
	"fmt"
	"fresh-connect/domain"
	"fresh-connect/moderation"
	"fresh-connect/repositories"
	"fresh-connect/services"
	"log/slog"
	"os"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/pflag"
)

var firstNames = []string{"Aarav", "Diya", "Kabir", "Meera", "Rohan", "Sara", "Vihaan", "Zoya"}

func main() {
	dbPath := pflag.String("db", "./data/freshconnect", "Path to badger DB")
	codecName := pflag.String("codec", repositories.CodecJSON, "Blob codec used by the server (json|cbor)")
	count := pflag.Int("count", 12, "Number of students to register")
	university := pflag.String("university", "IIT Delhi", "University of the seeded students")
	branches := pflag.StringSlice("branch", []string{"CSE", "ECE"}, "Branches to spread students over")
	pflag.Parse()

	if err := run(*dbPath, *codecName, *count, *university, *branches); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, codecName string, count int, university string, branches []string) error {
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	codec, err := repositories.NewCodec(codecName)
	if err != nil {
		return err
	}
	db, err := repositories.OpenBadger(dbPath, false)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	hub, err := newHub(repositories.NewBadgerStore(db), codec, log)
	if err != nil {
		return err
	}
	users, err := seed(hub, count, university, branches)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Printf("registered %s (%s) %s/%s\n", u.Name, u.ID, u.University, u.Branch)
	}
	return nil
}

func newHub(store repositories.IStore, codec repositories.Codec, log *slog.Logger) (*services.Hub, error) {
	users := repositories.NewUserRepository(store, codec)
	groups := repositories.NewGroupRepository(store, codec)
	matcher := services.NewGroupMatcher(groups, domain.DefaultGroupCapacity, nil, log)
	moderator, err := moderation.NewModerator(nil, '*', log)
	if err != nil {
		return nil, err
	}
	return services.NewHub(services.HubConfig{
		Session:          services.NewSessionService(users, matcher, log),
		Membership:       services.NewMembershipService(users, groups, matcher, log),
		Messaging:        services.NewMessagingService(groups, log),
		Moderator:        moderator,
		MaxContentLength: 500,
		Log:              log,
	}), nil
}

// seed registers count students round-robin over branches and has each one greet
// their group. The last student stays logged in, as after a real onboarding.
func seed(hub *services.Hub, count int, university string, branches []string) ([]domain.UserProfile, error) {
	if len(branches) == 0 {
		return nil, fmt.Errorf("at least one branch is required")
	}
	users := make([]domain.UserProfile, 0, count)
	for i := range count {
		user, err := hub.Register(domain.Registration{
			Name:           fmt.Sprintf("%s %d", firstNames[i%len(firstNames)], i+1),
			University:     university,
			Branch:         branches[i%len(branches)],
			IsNewAdmission: true,
		})
		if err != nil {
			return nil, fmt.Errorf("register student %d: %w", i+1, err)
		}
		group, found, err := hub.CurrentGroup(user.ID)
		if err != nil {
			return nil, err
		}
		if found {
			if _, _, err := hub.SendMessage(group.ID, domain.OutgoingMessage{
				SenderID:   user.ID,
				SenderName: user.Name,
				Text:       "Hi everyone, " + user.Name + " here!",
			}); err != nil {
				return nil, err
			}
		}
		users = append(users, user)
	}
	return users, nil
}
