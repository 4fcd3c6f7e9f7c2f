package service

import (
	"context"
	"time"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/storage"
)

type RestaurantRepository interface {
	GetRestaurantByEmail(ctx context.Context, email string) (*domain.Restaurant, error)
	CreateRestaurantWithOwner(ctx context.Context, rest *domain.Restaurant, owner *domain.Member) error
}

type RoleRepository interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	GetRole(ctx context.Context, id string) (*domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
	CreateRole(ctx context.Context, role *domain.Role) error
}

type MemberRepository interface {
	GetMember(ctx context.Context, restaurantID, memberID string) (*domain.Member, error)
	GetMemberByEmail(ctx context.Context, restaurantID, email string) (*domain.Member, error)
	CountMembers(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error)
	ListMembers(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.Member, error)
	CreateMember(ctx context.Context, m *domain.Member) error
	UpdateMember(ctx context.Context, m *domain.Member) error
	SetMemberActive(ctx context.Context, restaurantID, memberID string, active bool) error
	DeleteMember(ctx context.Context, restaurantID, memberID string) error
}

type CategoryRepository interface {
	CountCategories(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error)
	ListCategories(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.Category, error)
	ListActiveCategories(ctx context.Context, restaurantID string) ([]domain.CategoryRef, error)
	GetCategory(ctx context.Context, restaurantID, categoryID string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	RenameCategory(ctx context.Context, restaurantID, categoryID, name string) error
	UpdateCategory(ctx context.Context, restaurantID, categoryID, name string, active bool) error
	SetCategoryActive(ctx context.Context, restaurantID, categoryID string, active bool) error
	// DeleteCategory returns the image keys of the menu items removed with it.
	DeleteCategory(ctx context.Context, restaurantID, categoryID string) ([]string, error)
}

type MenuItemRepository interface {
	CountMenuItems(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error)
	ListMenuItems(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem, optionIDs []string) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem, optionIDs []string, replaceOptions bool) error
	SetMenuItemActive(ctx context.Context, restaurantID, itemID string, active bool) error
	DeleteMenuItem(ctx context.Context, restaurantID, itemID string) error
}

type OptionRepository interface {
	CountOptions(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error)
	ListOptions(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.MenuItemOption, error)
	ListActiveOptions(ctx context.Context, restaurantID string) ([]domain.MenuItemOption, error)
	GetOption(ctx context.Context, restaurantID, optionID string) (*domain.MenuItemOption, error)
	CountOwnedOptions(ctx context.Context, restaurantID string, optionIDs []string) (int, error)
	CreateOption(ctx context.Context, o *domain.MenuItemOption) error
	UpdateOption(ctx context.Context, o *domain.MenuItemOption) error
	SetOptionActive(ctx context.Context, restaurantID, optionID string, active bool) error
	DeleteOption(ctx context.Context, restaurantID, optionID string) error
}

type AuditRepository interface {
	InsertLog(ctx context.Context, entry *domain.LogEntry) error
}

type AuditPublisher interface {
	PublishAudit(ctx context.Context, entry domain.LogEntry) error
}

type ObjectStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type URLCache interface {
	GetURL(ctx context.Context, key string) (string, bool, error)
	SetURL(ctx context.Context, key, url string, ttl time.Duration) error
}

type ActivityStore interface {
	DailyCounts(ctx context.Context, restaurantID string, day time.Time) (map[string]int64, error)
	RecentEvents(ctx context.Context, restaurantID string, limit int64) ([]domain.LogEntry, error)
}

// IdentityVerifier validates a federated ID token and returns its verified email.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

var (
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ RoleRepository       = (*storage.PostgresRepository)(nil)
	_ MemberRepository     = (*storage.PostgresRepository)(nil)
	_ CategoryRepository   = (*storage.PostgresRepository)(nil)
	_ MenuItemRepository   = (*storage.PostgresRepository)(nil)
	_ OptionRepository     = (*storage.PostgresRepository)(nil)
	_ AuditRepository      = (*storage.PostgresRepository)(nil)
	_ AuditPublisher       = (*storage.KafkaPublisher)(nil)
	_ ObjectStore          = (*storage.S3Store)(nil)
	_ URLCache             = (*storage.RedisCache)(nil)
	_ ActivityStore        = (*storage.RedisCache)(nil)
	_ IdentityVerifier     = (*storage.FirebaseVerifier)(nil)
)
