package repositories

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/social"
)

var (
	testDB    *gorm.DB
	testRedis *redis.Client
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer := startPostgres(ctx)
	redisContainer := startRedis(ctx)

	code := m.Run()

	for _, c := range []testcontainers.Container{pgContainer, redisContainer} {
		if c == nil {
			continue
		}
		if err := c.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	os.Exit(code)
}

// startPostgres leaves testDB nil when no container runtime is usable.
// testcontainers panics instead of erroring when it cannot find Docker.
func startPostgres(ctx context.Context) (container testcontainers.Container) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("docker unavailable, skipping postgres tests: %v", r)
			testDB, container = nil, nil
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("y2k"),
		postgres.WithUsername("y2k"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container, skipping postgres tests: %s", err)
		return nil
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	testDB, err = gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	if err := testDB.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.Like{},
		&models.Friendship{},
		&models.Block{},
		&models.Message{},
		&models.ConversationSettings{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return pgContainer
}

// startRedis leaves testRedis nil when no container runtime is usable.
func startRedis(ctx context.Context) (container testcontainers.Container) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("docker unavailable, skipping redis tests: %v", r)
			testRedis, container = nil, nil
		}
	}()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		log.Printf("failed to start container, skipping redis tests: %s", err)
		return nil
	}

	addr, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("failed to get redis endpoint: %v", err)
	}
	testRedis = redis.NewClient(&redis.Options{Addr: addr})
	return redisContainer
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres container unavailable")
	}
	t.Cleanup(func() {
		err := testDB.Exec(`TRUNCATE TABLE users, comments, likes, friendships, blocks, messages, conversation_settings RESTART IDENTITY CASCADE`).Error
		require.NoError(t, err)
	})
}

func seedUsers(t *testing.T, names ...string) []models.User {
	t.Helper()
	repo := NewPostgresUserRepository(testDB)
	users := make([]models.User, 0, len(names))
	for _, name := range names {
		u := models.User{Username: name, DisplayName: name, Password: "x"}
		require.NoError(t, repo.CreateUser(context.Background(), &u))
		users = append(users, u)
	}
	return users
}

func Test_UserRepository(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewPostgresUserRepository(testDB)
	users := seedUsers(t, "neo", "trinity")

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.CreateUser(ctx, &models.User{Username: "neo", DisplayName: "again"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("lookup by username", func(t *testing.T) {
		u, err := repo.GetUserByUsername(ctx, "trinity")
		require.NoError(t, err)
		assert.Equal(t, users[1].ID, u.ID)
		assert.Equal(t, models.RoleUser, u.Role)

		_, err = repo.GetUserByUsername(ctx, "morpheus")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("touch last active", func(t *testing.T) {
		at := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, repo.TouchLastActive(ctx, users[0].ID, at))

		u, err := repo.GetUserByID(ctx, users[0].ID)
		require.NoError(t, err)
		require.NotNil(t, u.LastActive)
		assert.True(t, at.Equal(u.LastActive.UTC()))
	})

	t.Run("duplicate firebase uid", func(t *testing.T) {
		uid := "firebase-uid-1"
		require.NoError(t, repo.CreateUser(ctx, &models.User{Username: "morpheus", DisplayName: "m", FirebaseUID: &uid}))

		err := repo.CreateUser(ctx, &models.User{Username: "morpheus2", DisplayName: "m", FirebaseUID: &uid})
		assert.ErrorIs(t, err, ErrFirebaseLinked)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		require.NoError(t, repo.CreateUser(ctx, &models.User{Username: "agent_smith", DisplayName: "Smith"}))

		found, err := repo.SearchUsers(ctx, "_", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "agent_smith", found[0].Username)

		found, err = repo.SearchUsers(ctx, "%", 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		found, err := repo.SearchUsers(ctx, "TRIN", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "trinity", found[0].Username)
	})
}

func Test_RelationshipRepository(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewPostgresRelationshipRepository(testDB)
	users := seedUsers(t, "alice", "bob")
	alice, bob := users[0].ID, users[1].ID

	t.Run("add friend is idempotent in both directions", func(t *testing.T) {
		require.NoError(t, repo.AddFriend(ctx, alice, bob))
		require.NoError(t, repo.AddFriend(ctx, alice, bob))
		require.NoError(t, repo.AddFriend(ctx, bob, alice))

		var count int64
		require.NoError(t, testDB.Model(&models.Friendship{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		g, err := repo.GraphFor(ctx, bob)
		require.NoError(t, err)
		rel, err := social.ResolveRelationship(bob, alice, g)
		require.NoError(t, err)
		assert.Equal(t, social.RelationshipRequestReceived, rel)
	})

	t.Run("only the receiver can accept", func(t *testing.T) {
		require.NoError(t, repo.AcceptFriend(ctx, alice, bob))
		g, err := repo.GraphFor(ctx, alice)
		require.NoError(t, err)
		assert.False(t, g.AreFriends(alice, bob))

		require.NoError(t, repo.AcceptFriend(ctx, bob, alice))
		g, err = repo.GraphFor(ctx, alice)
		require.NoError(t, err)
		assert.True(t, g.AreFriends(alice, bob))
	})

	t.Run("block removes the friendship", func(t *testing.T) {
		require.NoError(t, repo.Block(ctx, bob, alice))
		require.NoError(t, repo.Block(ctx, bob, alice))

		g, err := repo.GraphFor(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, g.Friendships)
		assert.Len(t, g.Blocks, 1)

		_, err = social.ResolveRelationship(alice, bob, g)
		assert.ErrorIs(t, err, social.ErrAccessDenied)
	})

	t.Run("unblock and remove are delete-if-exists", func(t *testing.T) {
		require.NoError(t, repo.Unblock(ctx, bob, alice))
		require.NoError(t, repo.Unblock(ctx, bob, alice))
		require.NoError(t, repo.RemoveFriend(ctx, alice, bob))

		g, err := repo.GraphFor(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, g.Blocks)
		assert.Empty(t, g.Friendships)
	})
}

func Test_LikeRepository_Toggle(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewPostgresLikeRepository(testDB)
	users := seedUsers(t, "alice", "bob")
	target := "65f000000000000000000001"

	liked, err := repo.ToggleLike(ctx, users[0].ID, models.LikeTargetPost, target)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.ToggleLike(ctx, users[1].ID, models.LikeTargetPost, target)
	require.NoError(t, err)
	assert.True(t, liked)

	counts, err := repo.CountByTargets(ctx, models.LikeTargetPost, []string{target})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[target])

	liked, err = repo.ToggleLike(ctx, users[0].ID, models.LikeTargetPost, target)
	require.NoError(t, err)
	assert.False(t, liked)

	mine, err := repo.LikedTargets(ctx, users[0].ID, models.LikeTargetPost, []string{target})
	require.NoError(t, err)
	assert.False(t, mine[target])

	counts, err = repo.CountByTargets(ctx, models.LikeTargetComment, []string{target})
	require.NoError(t, err)
	assert.Zero(t, counts[target])
}

func Test_MessageAndSettingsRepositories(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	messages := NewPostgresMessageRepository(testDB)
	settings := NewPostgresConversationSettingsRepository(testDB)
	users := seedUsers(t, "alice", "bob")
	alice, bob := users[0].ID, users[1].ID

	require.NoError(t, messages.CreateMessage(ctx, &models.Message{SenderID: bob, ReceiverID: alice, Content: "hi"}))
	require.NoError(t, messages.CreateMessage(ctx, &models.Message{SenderID: alice, ReceiverID: bob, Content: "hey"}))
	require.NoError(t, messages.CreateMessage(ctx, &models.Message{SenderID: bob, ReceiverID: alice, Content: "sup"}))

	unread, err := messages.GetUnreadCount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, messages.MarkThreadRead(ctx, bob, alice))
	unread, err = messages.GetUnreadCount(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, unread)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = messages.GetUnreadCount(canceled, alice)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "messageRepo.GetUnreadCount")

	thread, err := messages.GetThread(ctx, bob, alice)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "hi", thread[0].Content)
	assert.False(t, thread[1].IsRead, "alice's own message stays unread until bob views it")

	t.Run("find does not create rows", func(t *testing.T) {
		s, err := settings.FindSettings(ctx, alice, bob)
		require.NoError(t, err)
		assert.Zero(t, s.ID)
		assert.True(t, s.ReadReceipts)
	})

	t.Run("ensure is idempotent", func(t *testing.T) {
		first, err := settings.EnsureSettings(ctx, alice, bob)
		require.NoError(t, err)
		second, err := settings.EnsureSettings(ctx, alice, bob)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.ReadReceipts)
		assert.False(t, second.EphemeralMode)
	})

	t.Run("update stores false flags", func(t *testing.T) {
		s, err := settings.EnsureSettings(ctx, alice, bob)
		require.NoError(t, err)
		nick := "bobby"
		s.Nickname = &nick
		s.ReadReceipts = false
		s.EphemeralMode = true
		require.NoError(t, settings.UpdateSettings(ctx, &s))

		got, err := settings.FindSettings(ctx, alice, bob)
		require.NoError(t, err)
		assert.Equal(t, "bobby", got.NicknameOrEmpty())
		assert.False(t, got.ReadReceipts)
		assert.True(t, got.EphemeralMode)
	})
}

func Test_NewCachedRelationshipRepository_NilClient(t *testing.T) {
	inner := NewPostgresRelationshipRepository(nil)
	assert.Same(t, inner, NewCachedRelationshipRepository(inner, nil, time.Minute))
}
