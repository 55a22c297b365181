package main

import (
	"fresh-connect/repositories"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestSeed_FillsGroupsPerBranch(t *testing.T) {
	req := require.New(t)
	db, err := repositories.OpenBadger("", true)
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	store := repositories.NewBadgerStore(db)
	hub, err := newHub(store, repositories.JSONCodec{}, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	users, err := seed(hub, 12, "IIT Delhi", []string{"CSE", "ECE"})
	req.NoError(err)
	req.Len(users, 12)

	groups, err := repositories.NewGroupRepository(store, repositories.JSONCodec{}).GetGroups()
	req.NoError(err)
	// 6 per branch, capacity 5: two groups each
	req.Len(groups, 4)
	for _, g := range groups {
		req.Len(g.Messages, len(g.Members))
	}

	current, found, err := hub.CurrentUser()
	req.NoError(err)
	req.True(found)
	req.Equal(users[11].ID, current.ID)
}

func TestSeed_RequiresBranch(t *testing.T) {
	_, err := seed(nil, 1, "IIT Delhi", nil)
	require.Error(t, err)
}
