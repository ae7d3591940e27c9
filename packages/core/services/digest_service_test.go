package services

import (
	"testing"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmailService struct {
	digests [][]models.Team
}

func (s *recordingEmailService) SendTeamRegisteredEmail(to string, team *models.Team) error {
	return nil
}

func (s *recordingEmailService) SendPendingTeamsDigest(to string, teams []models.Team) error {
	s.digests = append(s.digests, teams)
	return nil
}

func TestDigestService(t *testing.T) {
	db := setupTestDB(t)
	email := &recordingEmailService{}

	teamSvc := NewTeamService(db, email)
	digest := NewDigestService(db, email)

	t.Run("counts pending teams only", func(t *testing.T) {
		_, err := teamSvc.CreateTeam(validTeamRequest(), false)
		require.NoError(t, err)

		confirmed := validTeamRequest()
		confirmed.Name = "Downtown Dunkers"
		_, err = teamSvc.CreateTeam(confirmed, true)
		require.NoError(t, err)

		count, err := digest.GetPendingTeamsCount()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("skips sending without an admin address", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "")

		require.NoError(t, digest.SendPendingTeamsDigest())
		assert.Empty(t, email.digests)
	})

	t.Run("sends the pending teams to the admin", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "admin@example.com")

		require.NoError(t, digest.SendPendingTeamsDigest())
		require.Len(t, email.digests, 1)
		require.Len(t, email.digests[0], 1)
		assert.Equal(t, "Crescent Ballers", email.digests[0][0].Name)
	})
}
