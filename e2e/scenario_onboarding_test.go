package e2e

import (
	"context"
	"fresh-connect/domain"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testOnboardingSuite struct {
	BaseHTTPSuite
}

func TestOnboardingSuite(t *testing.T) {
	suite.Run(t, &testOnboardingSuite{})
}

func (s *testOnboardingSuite) TestRegisterChatAndSwitchGroup() {
	// A random branch keeps reruns against the same server from landing in old groups
	branch := "e2e " + uuid.NewString()[:8]
	var user domain.UserProfile
	var group domain.PeerGroup

	s.Step("Step 1: Register a new admission", func(ctx context.Context) {
		status := s.Call(ctx, http.MethodPost, "/api/v1/session", domain.Registration{
			Name: "E2E Student", University: "IIT Delhi", Branch: branch, IsNewAdmission: true,
		}, &user)
		s.Require().Equal(http.StatusCreated, status)
		s.Require().NotEmpty(user.ID)
	})

	s.Step("Step 2: Land alone in a fresh group", func(ctx context.Context) {
		status := s.Call(ctx, http.MethodGet, "/api/v1/users/"+user.ID+"/group", nil, &group)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Equal([]string{user.ID}, group.Members)
	})

	s.Step("Step 3: Post a message", func(ctx context.Context) {
		var sent domain.ChatMessage
		status := s.Call(ctx, http.MethodPost, "/api/v1/groups/"+group.ID+"/messages", domain.OutgoingMessage{
			SenderID: user.ID, SenderName: user.Name, Text: "hello batch",
		}, &sent)
		s.Require().Equal(http.StatusAccepted, status)
		s.Require().Equal("hello batch", sent.Text)
	})

	s.Step("Step 4: Switch group", func(ctx context.Context) {
		var changed struct {
			GroupID string `json:"groupId"`
		}
		status := s.Call(ctx, http.MethodPost, "/api/v1/users/"+user.ID+"/group/change", nil, &changed)
		s.Require().Equal(http.StatusOK, status)
		s.Require().NotEqual(group.ID, changed.GroupID)
	})

	s.Step("Step 5: Log out", func(ctx context.Context) {
		s.Require().Equal(http.StatusNoContent, s.Call(ctx, http.MethodDelete, "/api/v1/session", nil, nil))
		s.Require().Equal(http.StatusNotFound, s.Call(ctx, http.MethodGet, "/api/v1/session", nil, nil))
	})
}
