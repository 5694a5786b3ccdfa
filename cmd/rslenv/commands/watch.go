package commands

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"git.home.luguber.info/inful/rslenv/internal/envsetup"
	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/logfields"
	"git.home.luguber.info/inful/rslenv/internal/pom"
	"git.home.luguber.info/inful/rslenv/internal/retry"
	"git.home.luguber.info/inful/rslenv/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Format   string        `short:"f" enum:"shell,dotenv,plain" default:"shell" help:"Output format (shell, dotenv, plain)"`
	Debounce time.Duration `default:"300ms" help:"Quiet period before a change is processed"`
	Retries  int           `default:"3" help:"Re-read attempts for a descriptor caught mid-write"`
	Backoff  string        `enum:"fixed,linear,exponential" default:"linear" help:"Delay growth between re-reads (fixed, linear, exponential)"`
}

// partialDescriptor reports errors a concurrent writer can cause.
func partialDescriptor(err error) bool {
	return stdErrors.Is(err, pom.ErrMalformedDescriptor) ||
		stdErrors.Is(err, pom.ErrDescriptorNotFound) ||
		stdErrors.Is(err, pom.ErrVersionNotFound)
}

// versionEmitter prints one line per distinct project version.
type versionEmitter struct {
	svc    *envsetup.Service
	read   func(context.Context) (string, error)
	render func(value string) (string, error)
	out    io.Writer

	mu   sync.Mutex
	last string
}

// emit reads the version once and composes the line from that read, so the
// printed paths always belong to the version recorded as last. last only
// moves once the line is written.
func (e *versionEmitter) emit(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.read(ctx)
	if err != nil {
		return err
	}
	if v == e.last {
		return nil
	}

	value, err := e.svc.PreviewFor(v)
	if err != nil {
		return err
	}
	line, err := e.render(value)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(e.out, line); err != nil {
		return err
	}
	e.last = v
	return nil
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	svc, cfg, err := root.service(g)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(g.context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	policy := retry.NewPolicy(retry.BackoffMode(w.Backoff), 0, 0, w.Retries)
	em := &versionEmitter{
		svc: svc,
		read: func(ctx context.Context) (string, error) {
			return retry.Do(ctx, policy, partialDescriptor, svc.Version)
		},
		render: func(value string) (string, error) {
			return FormatAssignment(w.Format, cfg.PathPlatform().Resolve(), cfg.Variable, value)
		},
		out: g.out(),
	}

	if err := em.emit(ctx); err != nil {
		return err
	}

	dw, err := watch.NewDescriptorWatcher(svc.DescriptorPath(), w.Debounce, func(ctx context.Context) {
		if err := em.emit(ctx); err != nil {
			g.logger().Warn("Ignoring unreadable descriptor", logfields.Descriptor(svc.DescriptorPath()), logfields.Error(err))
		}
	})
	if err != nil {
		return derrors.WatchFailed(svc.DescriptorPath(), err)
	}

	if err := dw.Run(ctx); err != nil {
		return derrors.WatchFailed(svc.DescriptorPath(), err)
	}
	g.logger().Info("Stopped watching descriptor", logfields.Descriptor(svc.DescriptorPath()))
	return nil
}
