package service

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
	"github.com/diegoclair/meeting-alarm-bot/mocks"
)

type allMocks struct {
	mockSnapshotter *mocks.MockSnapshotter
	mockMessenger   *mocks.MockMessenger
	clock           *clock.Mock
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *Services, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockSnapshotter: mocks.NewMockSnapshotter(ctrl),
		mockMessenger:   mocks.NewMockMessenger(ctrl),
		clock:           clock.NewMock(),
	}

	// validate service creation
	svc = New(m.mockSnapshotter, m.mockMessenger, zap.NewNop(), Options{
		TickInterval: 10 * time.Second,
		SendTimeout:  time.Second,
		SaveTimeout:  time.Second,
		Clock:        m.clock,
	})
	require.NotNil(t, svc)
	require.NotNil(t, svc.Schedule)
	require.NotNil(t, svc.Resolver)
	require.NotNil(t, svc.Scheduler)

	return
}

// seed puts entries straight into the in-memory state, without saving.
func seed(t *testing.T, s *scheduleService, key entity.BucketKey, offset *int, times ...[2]int) {
	t.Helper()

	b := s.state.Bucket(key)
	b.UTCOffset = offset
	for _, hm := range times {
		var (
			e   *entity.Entry
			err error
		)
		if key.Kind == entity.Guild {
			e, err = entity.NewEntry(key.Kind, hm[0], hm[1], key.OwnerID, "C-"+key.OwnerID, "U-author")
		} else {
			e, err = entity.NewEntry(key.Kind, hm[0], hm[1], "", key.OwnerID, key.OwnerID)
		}
		require.NoError(t, err)
		require.NoError(t, b.Insert(e))
	}
}

func entryTimes(entries []entity.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Time())
	}
	return out
}

func intPtr(v int) *int { return &v }
