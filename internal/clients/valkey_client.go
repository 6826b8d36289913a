package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
}

type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(ctx context.Context, opts ValkeyOptions) (*ValkeyClient, error) {
	clientOpts := valkey.ClientOption{
		InitAddress: []string{
			opts.Address,
		},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", opts.Address))
	return &ValkeyClient{Client: client}, nil
}

func (vc *ValkeyClient) Close() {
	if vc != nil && vc.Client != nil {
		vc.Client.Close()
	}
}

// Get returns the value stored at key; found is false when the key does not exist.
func (vc *ValkeyClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build())
	value, err := res.AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[ValkeyClient] get %s: %w", key, err)
	}
	return value, true, nil
}

func (vc *ValkeyClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := vc.Client.B().Set().Key(key).Value(valkey.BinaryString(value)).ExSeconds(int64(ttl / time.Second)).Build()
	if err := vc.Client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] set %s: %w", key, err)
	}
	return nil
}
