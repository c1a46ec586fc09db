package session

import "context"

// Store persists session data by session id. Load of an unknown id returns
// empty data, not an error.
type Store interface {
	Load(ctx context.Context, id string) (Data, error)
	Save(ctx context.Context, id string, data Data) error
	Delete(ctx context.Context, id string) error
}
