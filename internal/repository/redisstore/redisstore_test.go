package redisstore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/foodcart-demo/internal/repository/redisstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type redisStoreSuite struct {
	suite.Suite

	container testcontainers.Container
	client    *redis.Client
	storage   *redisstore.Storage
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}

	suite.Run(t, new(redisStoreSuite))
}

func (suite *redisStoreSuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		addr string
		err  error
	)

	suite.container, addr, err = startRedis(ctx)
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: addr})

	suite.storage, err = redisstore.New(suite.client, redisstore.DefaultPrefix)
	suite.Require().NoError(err)
}

func (suite *redisStoreSuite) TearDownSuite() {
	if suite.client != nil {
		suite.NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *redisStoreSuite) TestSetGetDelete() {
	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	_, ok, err := suite.storage.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, suite.storage.Set(ctx, key, []byte(`{"cart":[]}`)))
	require.NoError(t, suite.storage.Set(ctx, key, []byte(`{"cart":[{"id":"1"}]}`)))

	got, ok, err := suite.storage.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"cart":[{"id":"1"}]}`, string(got))

	// stored under the prefix
	raw, err := suite.client.Get(ctx, redisstore.DefaultPrefix+key).Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"cart":[{"id":"1"}]}`, raw)

	require.NoError(t, suite.storage.Delete(ctx, key))
	_, ok, err = suite.storage.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func (suite *redisStoreSuite) TestEmptyKey() {
	t := suite.T()
	ctx := t.Context()

	_, _, err := suite.storage.Get(ctx, "")
	require.EqualError(t, err, "key is empty")

	require.EqualError(t, suite.storage.Set(ctx, "", nil), "key is empty")
	require.EqualError(t, suite.storage.Delete(ctx, ""), "key is empty")
}

func startRedis(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.4-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("testcontainers.GenericContainer: %w", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("container.Endpoint: %w", err)
	}

	return container, endpoint, nil
}
