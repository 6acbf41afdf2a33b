package bwhost

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// Options are the command line options of a single run.
type Options struct {
	Stage    string
	Region   string
	Profile  string
	Function string
}

// RunConfig is the configuration the host resolved for the current run,
// before the service file is consulted.
type RunConfig struct {
	Stage       string
	Region      string
	Profile     string
	ServicePath string
}

// LogSink receives log lines that plugins want shown to the user.
type LogSink interface {
	Log(msg string)
}

// WriterSink is a LogSink that writes one line per message.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Log(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, msg)
}

// ErrUnknownProvider is returned by Registry.Get for names never registered.
var ErrUnknownProvider = errors.New("unknown provider")

// Registry holds the providers plugins registered during a run.
type Registry struct {
	providers map[string]any
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]any)}
}

// Register stores p under name. Registering the same name again replaces the
// earlier provider but keeps its position.
func (r *Registry) Register(name string, p any) {
	if _, ok := r.providers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

func (r *Registry) Get(name string) (any, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProvider, "%q", name)
	}
	return p, nil
}

func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Framework is the object graph handed to provider plugins.
type Framework struct {
	Options  Options
	Config   RunConfig
	Service  *Service
	Registry *Registry
	Log      LogSink
}

// NewFramework builds a Framework around an already loaded service. The log
// sink defaults to discarding output.
func NewFramework(svc *Service, opts Options, cfg RunConfig, sink LogSink) *Framework {
	if sink == nil {
		sink = NewWriterSink(io.Discard)
	}
	return &Framework{
		Options:  opts,
		Config:   cfg,
		Service:  svc,
		Registry: NewRegistry(),
		Log:      sink,
	}
}
