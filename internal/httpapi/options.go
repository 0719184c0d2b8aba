package httpapi

import (
	"context"
	"net/http"
)

const defaultMaxBodyBytes int64 = 1 << 16

// Options are the process-wide settings of the HTTP layer.
type Options struct {
	// MaxBodyBytes caps prediction request bodies; <= 0 selects 64 KiB.
	MaxBodyBytes int64
	// CORS adds the CORS middleware. An empty CORSOrigins allows any origin.
	CORS        bool
	CORSOrigins []string
	// BaseContext is cancelled on shutdown; evaluations waiting for the
	// manager slot abort with it.
	BaseContext context.Context
}

var opts = Options{MaxBodyBytes: defaultMaxBodyBytes, BaseContext: context.Background()}

// Configure installs o for handlers built by NewMux afterwards. The zero
// Options restores the defaults.
func Configure(o Options) {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBodyBytes
	}
	if o.BaseContext == nil {
		o.BaseContext = context.Background()
	}
	o.CORSOrigins = append([]string(nil), o.CORSOrigins...)
	opts = o
}

// evaluationContext is r's context, additionally cancelled when the server
// base context ends.
func evaluationContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(opts.BaseContext, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
