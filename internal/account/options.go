package account

import "log/slog"

const (
	defaultDirName = "roster"
	fileExt        = ".accounts"
)

// Option configures Open.
type Option func(*options)

type options struct {
	dir         string
	credentials CredentialStore
	codec       Codec
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		credentials: PassthroughCredentialStore{},
		codec:       JSONCodec{},
		logger:      slog.Default(),
	}
}

// WithDir places the account file in dir instead of the user config
// directory.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithCredentialStore sets the store applied to credential bytes. A nil
// store keeps the passthrough default.
func WithCredentialStore(cs CredentialStore) Option {
	return func(o *options) {
		if cs != nil {
			o.credentials = cs
		}
	}
}

// WithCodec sets the codec for the account file and credential payloads.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets the logger used for load and save failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
