package service_test

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"
	"time"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/mocks"
	"kuchi/restaurant-svc/internal/service"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	restaurantA = "a0000000-0000-0000-0000-000000000001"
	restaurantB = "b0000000-0000-0000-0000-000000000002"
	memberID    = "f0000000-0000-0000-0000-000000000007"
	categoryID  = "c0000000-0000-0000-0000-000000000003"
	itemID      = "d0000000-0000-0000-0000-000000000004"
	optionID    = "e0000000-0000-0000-0000-000000000005"
	optionID2   = "e0000000-0000-0000-0000-000000000006"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

var (
	keyOnce sync.Once
	testKey *rsa.PrivateKey
)

func signingKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	keyOnce.Do(func() {
		var err error
		testKey, err = rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
	})
	return testKey
}

func newTokens(t *testing.T, ttl time.Duration) *service.TokenManager {
	key := signingKey(t)
	return service.NewTokenManager(key, &key.PublicKey, ttl)
}

func nullLog() (*logrus.Entry, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger), hook
}

func principal(role string) *domain.Principal {
	return &domain.Principal{
		TokenPayload: domain.TokenPayload{Subject: memberID, RestaurantID: restaurantA},
		Member: &domain.Member{
			ID:           memberID,
			RestaurantID: restaurantA,
			RoleName:     role,
			IsActive:     true,
		},
	}
}

// auditExpecting returns a writer whose repository expects one entry of the given kind.
func auditExpecting(t *testing.T, logType domain.LogType, entity domain.AffectedEntity) *service.AuditWriter {
	t.Helper()
	repo := mocks.NewAuditRepository(t)
	repo.On("InsertLog", mock.Anything, mock.MatchedBy(func(e *domain.LogEntry) bool {
		return e.LogType == logType && e.AffectedEntity == entity && e.RestaurantID != ""
	})).Return(nil).Once()
	log, _ := nullLog()
	return service.NewAuditWriter(repo, nil, log)
}

// silentAudit fails the test if anything is recorded.
func silentAudit(t *testing.T) *service.AuditWriter {
	t.Helper()
	log, _ := nullLog()
	return service.NewAuditWriter(mocks.NewAuditRepository(t), nil, log)
}

var (
	_ service.RestaurantRepository = (*mocks.RestaurantRepository)(nil)
	_ service.RoleRepository       = (*mocks.RoleRepository)(nil)
	_ service.MemberRepository     = (*mocks.MemberRepository)(nil)
	_ service.CategoryRepository   = (*mocks.CategoryRepository)(nil)
	_ service.MenuItemRepository   = (*mocks.MenuItemRepository)(nil)
	_ service.OptionRepository     = (*mocks.OptionRepository)(nil)
	_ service.AuditRepository      = (*mocks.AuditRepository)(nil)
	_ service.AuditPublisher       = (*mocks.AuditPublisher)(nil)
	_ service.ObjectStore          = (*mocks.ObjectStore)(nil)
	_ service.URLCache             = (*mocks.URLCache)(nil)
	_ service.ActivityStore        = (*mocks.ActivityStore)(nil)
	_ service.IdentityVerifier     = (*mocks.IdentityVerifier)(nil)
)
