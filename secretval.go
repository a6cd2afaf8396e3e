package secretval

import (
	"errors"
	"log/slog"
)

// Option configures a Value.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger directs failure diagnostics to l. Without it every failure
// is silently absorbed.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Value reads and writes a single value of type V stored under a fixed
// service identifier. All configuration is immutable after construction,
// so a Value is safe for concurrent use to the extent the backend is.
type Value[V any] struct {
	backend    Backend
	service    string
	defaultVal V
	codec      Codec[V]
	logger     *slog.Logger
}

// New binds a value of type V to service, serialized through codec.
// defaultValue is returned by Get whenever no usable stored value exists.
func New[V any](backend Backend, service string, defaultValue V, codec Codec[V], opts ...Option) *Value[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Value[V]{
		backend:    backend,
		service:    service,
		defaultVal: defaultValue,
		codec:      codec,
		logger:     o.logger,
	}
}

// NewString binds a string to service, stored as raw UTF-8 bytes with no
// serializer involved.
func NewString(backend Backend, service, defaultValue string, opts ...Option) *Value[string] {
	return New[string](backend, service, defaultValue, StringCodec{}, opts...)
}

// Service returns the service identifier the value is bound to.
func (v *Value[V]) Service() string {
	return v.service
}

// Get returns the stored value, or the default when no item exists, the
// store fails, or the payload cannot be decoded. It never returns an
// error: failures other than a plain missing item are reported through
// the logger, if one is configured.
func (v *Value[V]) Get() V {
	data, err := v.backend.Search(v.service)
	if err != nil {
		// A missing item is the normal empty state, never logged.
		if errors.Is(err, ErrNotFound) {
			return v.defaultVal
		}
		v.reportError("loading", err)
		return v.defaultVal
	}
	if data == nil {
		v.reportError("loading", ErrUnexpectedData)
		return v.defaultVal
	}

	val, err := v.codec.Decode(data)
	if err != nil {
		v.reportError("decoding", err)
		return v.defaultVal
	}
	return val
}

// Set stores value, creating the item if absent and updating it in place
// otherwise. A codec that encodes to a nil slice signals "no value" and
// removes the item instead. An encoding error aborts the write, leaving
// any stored value untouched. Set never returns an error.
func (v *Value[V]) Set(value V) {
	data, err := v.codec.Encode(value)
	if err != nil {
		v.reportError("encoding", err)
		return
	}
	if data == nil {
		v.Delete()
		return
	}

	err = v.backend.Update(v.service, data)
	if errors.Is(err, ErrNotFound) {
		err = v.backend.Add(v.service, data)
	}
	if err != nil {
		v.reportError("storing", err)
	}
}

// Delete removes the stored item. Deleting an item that does not exist
// is a success.
func (v *Value[V]) Delete() {
	err := v.backend.Delete(v.service)
	if err != nil && !errors.Is(err, ErrNotFound) {
		v.reportError("deleting", err)
	}
}

// reportError is the single funnel for every failure: the operation
// name, the service identifier, and the store or codec detail.
func (v *Value[V]) reportError(op string, err error) {
	if v.logger == nil {
		return
	}
	v.logger.Error("error while "+op+" keychain item", "service", v.service, "error", err)
}
