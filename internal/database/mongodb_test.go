package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectMongo_InvalidURL(t *testing.T) {
	client, err := ConnectMongo(context.Background(), MongoConfig{
		URL:     "invalid://localhost",
		Timeout: time.Second,
	})
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to mongodb")
}

func TestConnectMongo_Unreachable(t *testing.T) {
	client, err := ConnectMongo(context.Background(), MongoConfig{
		URL:     "mongodb://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	})
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to ping mongodb")
}

func TestConnectMongo(t *testing.T) {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}

	client, err := ConnectMongo(context.Background(), MongoConfig{URL: url, Timeout: 5 * time.Second})
	require.NoError(t, err)
	require.NoError(t, client.Disconnect(context.Background()))
}
