package podconfig

import "context"

type Fetcher interface {
	Load(ctx context.Context, podID string, credential Credential) (PodConfig, error)
}
